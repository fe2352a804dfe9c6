package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// filterProperties are the policy parameters shared by the two member
// collection tools
func filterProperties() map[string]interface{} {
	return map[string]interface{}{
		"model": map[string]interface{}{
			"type":        "string",
			"description": "Snapshot name to query (defaults to the configured default snapshot)",
		},
		"type": map[string]interface{}{
			"type":        "string",
			"description": "Queried type, e.g. 'Buffer' or 'Buffer.type' for the singleton type",
		},
		"want_types": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, enumerate type-level members instead of term-level ones",
			"default":     false,
		},
		"applied": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, the completion position is followed by an argument list; class declarations qualify as constructor-proxy candidates",
			"default":     false,
		},
		"include_private": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, include private members",
			"default":     false,
		},
		"include_synthetic": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, include compiler-generated members",
			"default":     false,
		},
		"include_constructors": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, include constructors",
			"default":     false,
		},
		"check_access": map[string]interface{}{
			"type":        "boolean",
			"description": "If true, filter members by accessibility from call_site",
			"default":     false,
		},
		"call_site": map[string]interface{}{
			"type":        "string",
			"description": "Class name of the call site; omitted or unknown disables accessibility filtering",
		},
	}
}

// loadModelTool returns the tool definition for load_model
func loadModelTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_model",
		Description: "Import compiler semantic-model snapshot files into the store",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"paths": map[string]interface{}{
					"type":        "array",
					"description": "Absolute paths of snapshot JSON files exported by the compiler",
					"items": map[string]interface{}{
						"type": "string",
					},
					"minItems": 1,
				},
				"replace": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, overwrite snapshots already stored under the same name",
					"default":     false,
				},
			},
			Required: []string{"paths"},
		},
	}
}

// listModelsTool returns the tool definition for list_models
func listModelsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_models",
		Description: "List stored semantic-model snapshots",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// completeMembersTool returns the tool definition for complete_members
func completeMembersTool() mcp.Tool {
	props := filterProperties()
	props["limit"] = map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of occurrences to return",
		"minimum":     1,
	}
	return mcp.Tool{
		Name:        "complete_members",
		Description: "Enumerate every member occurrence visible on a type, including all overload alternatives, in hierarchy order (completion-engine view)",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   []string{"type"},
		},
	}
}

// suggestCandidatesTool returns the tool definition for suggest_candidates
func suggestCandidatesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "suggest_candidates",
		Description: "Enumerate the distinct member entities visible on a type (did-you-mean view; ranking and edit distance are left to the client)",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: filterProperties(),
			Required:   []string{"type"},
		},
	}
}

// validateMemberTool returns the tool definition for validate_member
func validateMemberTool() mcp.Tool {
	return mcp.Tool{
		Name:        "validate_member",
		Description: "Re-validate a single already-known member occurrence without a full hierarchy walk (synthetic and private members always fail this check)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"model": map[string]interface{}{
					"type":        "string",
					"description": "Snapshot name to query (defaults to the configured default snapshot)",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Queried type, e.g. 'Buffer' or 'Buffer.type'",
				},
				"member": map[string]interface{}{
					"type":        "string",
					"description": "Member name to re-validate",
				},
				"want_types": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, validate as a type-level member reference",
					"default":     false,
				},
				"check_access": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, check accessibility from call_site",
					"default":     false,
				},
				"call_site": map[string]interface{}{
					"type":        "string",
					"description": "Class name of the call site",
				},
			},
			Required: []string{"type", "member"},
		},
	}
}
