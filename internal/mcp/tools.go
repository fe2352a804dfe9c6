package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mwhelan/semview-mcp/internal/loader"
	"github.com/mwhelan/semview-mcp/internal/member"
	"github.com/mwhelan/semview-mcp/internal/model"
	"github.com/mwhelan/semview-mcp/internal/storage"
	"github.com/mwhelan/semview-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams  = -32602 // Invalid method parameters
	ErrorCodeInternalError  = -32603 // Internal JSON-RPC error
	ErrorCodeModelNotFound  = -32001 // No snapshot stored under the given name
	ErrorCodeLoadInProgress = -32002 // Another snapshot import is already running
	ErrorCodeUnknownType    = -32003 // Queried type is not declared in the snapshot
)

// Validation errors
var (
	ErrModelRequired = errors.New("no model given and no default snapshot configured")
)

// handleLoadModel handles the load_model tool invocation
func (s *Server) handleLoadModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	paths, err := getStringSlice(args, "paths")
	if err != nil || len(paths) == 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "paths parameter is required", map[string]interface{}{
			"param":  "paths",
			"reason": "missing or empty",
		})
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			return nil, newMCPError(ErrorCodeInvalidParams, "snapshot paths must be absolute", map[string]interface{}{
				"param": "paths",
				"path":  p,
			})
		}
	}

	replace := getBoolDefault(args, "replace", false)

	stats, err := s.loader.LoadAll(ctx, paths, &loader.Config{Replace: replace})
	if err != nil {
		if errors.Is(err, loader.ErrLoadInProgress) {
			return nil, newMCPError(ErrorCodeLoadInProgress, "another import is already running", nil)
		}
		return nil, newMCPError(ErrorCodeInternalError, "import failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Replaced snapshots must not be served from cache
	s.invalidateModels()

	response := map[string]interface{}{
		"snapshots_loaded": stats.SnapshotsLoaded,
		"snapshots_failed": stats.SnapshotsFailed,
		"classes_loaded":   stats.ClassesLoaded,
		"entities_loaded":  stats.EntitiesLoaded,
		"duration_ms":      stats.Duration.Milliseconds(),
	}
	if len(stats.ErrorMessages) > 0 {
		response["errors"] = stats.ErrorMessages
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListModels handles the list_models tool invocation
func (s *Server) handleListModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snaps, err := s.store.ListSnapshots(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list snapshots", map[string]interface{}{
			"error": err.Error(),
		})
	}

	models := make([]map[string]interface{}, 0, len(snaps))
	for _, snap := range snaps {
		models = append(models, map[string]interface{}{
			"name":         snap.Name,
			"uid":          snap.UID,
			"compiler":     snap.Compiler,
			"class_count":  snap.ClassCount,
			"entity_count": snap.EntityCount,
			"created_at":   snap.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response := map[string]interface{}{
		"count":  len(models),
		"models": models,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// memberQuery holds the decoded parameters shared by the collection tools
type memberQuery struct {
	model  *model.Model
	typ    types.Type
	policy member.Policy
}

// parseMemberQuery decodes the model/type/policy parameters common to
// complete_members and suggest_candidates
func (s *Server) parseMemberQuery(ctx context.Context, args map[string]interface{}) (*memberQuery, error) {
	typeName := getStringDefault(args, "type", "")
	if typeName == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "type parameter is required", map[string]interface{}{
			"param":  "type",
			"reason": "missing or empty",
		})
	}

	m, err := s.getModel(ctx, getStringDefault(args, "model", ""))
	if err != nil {
		return nil, modelError(err)
	}

	typ, err := m.ResolveType(typeName)
	if err != nil {
		return nil, newMCPError(ErrorCodeUnknownType, "unknown type", map[string]interface{}{
			"type":  typeName,
			"model": m.Name,
		})
	}

	pol := member.Policy{
		WantTypes:           getBoolDefault(args, "want_types", false),
		Applied:             getBoolDefault(args, "applied", false),
		IncludePrivate:      getBoolDefault(args, "include_private", false),
		IncludeSynthetic:    getBoolDefault(args, "include_synthetic", false),
		IncludeConstructors: getBoolDefault(args, "include_constructors", false),
		CheckAccess:         getBoolDefault(args, "check_access", false),
	}
	if siteName := getStringDefault(args, "call_site", ""); siteName != "" {
		// An unknown call site leaves the policy's site nil, which
		// disables accessibility filtering rather than failing.
		if site, ok := m.Class(siteName); ok {
			pol.CallSite = site
		}
	}

	return &memberQuery{model: m, typ: typ, policy: pol}, nil
}

// handleCompleteMembers handles the complete_members tool invocation
func (s *Server) handleCompleteMembers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	q, err := s.parseMemberQuery(ctx, args)
	if err != nil {
		return nil, err
	}

	limit := getIntDefault(args, "limit", s.cfg.MaxResults)
	if limit <= 0 || limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}

	dens := collector(q.model).CollectDenotations(q.typ, q.policy)

	truncated := false
	if len(dens) > limit {
		dens = dens[:limit]
		truncated = true
	}

	occurrences := make([]map[string]interface{}, 0, len(dens))
	for _, d := range dens {
		occurrences = append(occurrences, map[string]interface{}{
			"name":      d.Entity.Name,
			"kind":      string(d.Entity.Kind),
			"signature": d.Signature,
			"via":       d.Via.Name,
			"owner":     ownerName(d.Entity),
		})
	}

	response := map[string]interface{}{
		"model":       q.model.Name,
		"count":       len(occurrences),
		"truncated":   truncated,
		"occurrences": occurrences,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSuggestCandidates handles the suggest_candidates tool invocation
func (s *Server) handleSuggestCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	q, err := s.parseMemberQuery(ctx, args)
	if err != nil {
		return nil, err
	}

	entities := collector(q.model).CollectSymbols(q.typ, q.policy)

	candidates := make([]map[string]interface{}, 0, len(entities))
	for _, e := range entities {
		candidates = append(candidates, map[string]interface{}{
			"name":  e.Name,
			"kind":  string(e.Kind),
			"owner": ownerName(e),
		})
	}

	response := map[string]interface{}{
		"model":      q.model.Name,
		"count":      len(candidates),
		"candidates": candidates,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleValidateMember handles the validate_member tool invocation
func (s *Server) handleValidateMember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	typeName := getStringDefault(args, "type", "")
	memberName := getStringDefault(args, "member", "")
	if typeName == "" || memberName == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "type and member parameters are required", nil)
	}

	m, err := s.getModel(ctx, getStringDefault(args, "model", ""))
	if err != nil {
		return nil, modelError(err)
	}

	typ, err := m.ResolveType(typeName)
	if err != nil {
		return nil, newMCPError(ErrorCodeUnknownType, "unknown type", map[string]interface{}{
			"type":  typeName,
			"model": m.Name,
		})
	}

	wantTypes := getBoolDefault(args, "want_types", false)
	checkAccess := getBoolDefault(args, "check_access", false)
	var site *types.Class
	if siteName := getStringDefault(args, "call_site", ""); siteName != "" {
		site, _ = m.Class(siteName)
	}

	col := collector(m)
	dens := m.FindDenotations(typ, memberName)

	valid := false
	for _, d := range dens {
		if col.IsValidMember(d, wantTypes, site, checkAccess) {
			valid = true
			break
		}
	}

	response := map[string]interface{}{
		"model":       m.Name,
		"member":      memberName,
		"valid":       valid,
		"occurrences": len(dens),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// modelError maps storage/model lookup failures to MCP errors
func modelError(err error) error {
	switch {
	case errors.Is(err, ErrModelRequired):
		return newMCPError(ErrorCodeInvalidParams, ErrModelRequired.Error(), nil)
	case errors.Is(err, storage.ErrNotFound):
		return newMCPError(ErrorCodeModelNotFound, "model not found", map[string]interface{}{
			"error": err.Error(),
		})
	default:
		return newMCPError(ErrorCodeInternalError, "failed to load model", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func ownerName(e *types.Entity) string {
	if e.Owner == nil {
		return ""
	}
	return e.Owner.Name
}

// newMCPError creates an MCP protocol error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter
func getStringSlice(args map[string]interface{}, key string) ([]string, error) {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}
