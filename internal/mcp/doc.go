// Package mcp implements the Model Context Protocol (MCP) server for
// SemView.
//
// The server exposes five tools over stdio for inspecting compiler
// semantic-model snapshots:
//   - load_model: Import snapshot JSON files exported by the compiler
//   - list_models: List stored snapshots
//   - complete_members: Every member occurrence on a type, with overloads
//   - suggest_candidates: Distinct member entities on a type, for
//     did-you-mean ranking done by the client
//   - validate_member: Re-check one known member occurrence
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout is reserved for protocol traffic; all logging goes to stderr.
//
// # Tool: complete_members
//
// Enumerate the members visible on a type for completion rendering:
//
//	Request:
//	  {"type": "Buffer", "applied": true, "check_access": true, "call_site": "Editor"}
//
//	Response:
//	  {"count": 2, "occurrences": [
//	    {"name": "append", "kind": "term", "signature": "append(x: Int): Buffer", "via": "Buffer", "owner": "Buffer"},
//	    {"name": "append", "kind": "term", "signature": "append(xs: Seq): Buffer", "via": "Buffer", "owner": "Buffer"}
//	  ]}
//
// Overload alternatives and occurrences reached through different base
// classes are all reported; merging and ranking belong to the client.
//
// # Tool: suggest_candidates
//
// The deduplicated view used for "did you mean" suggestions. The server
// returns raw candidate names only; edit-distance ranking is the
// client's job.
//
// # Error Handling
//
// Parameter problems map to JSON-RPC error codes (see the ErrorCode
// constants). An unknown call-site class is not an error: accessibility
// filtering is simply disabled for that call, matching the resolver's
// "no type" sentinel behavior.
package mcp
