package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mwhelan/semview-mcp/internal/config"
	"github.com/mwhelan/semview-mcp/internal/loader"
	"github.com/mwhelan/semview-mcp/internal/member"
	"github.com/mwhelan/semview-mcp/internal/model"
	"github.com/mwhelan/semview-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "semview-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	store  storage.Store
	loader *loader.Loader
	cfg    *config.Config

	// models caches decoded snapshots per name. Only input models are
	// cached; member-query results are computed fresh on every call.
	mu     sync.RWMutex
	models map[string]*model.Model
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Default()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:    mcpServer,
		store:  store,
		loader: loader.New(store),
		cfg:    cfg,
		models: make(map[string]*model.Model),
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.store.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(loadModelTool(), s.handleLoadModel)
	s.mcp.AddTool(listModelsTool(), s.handleListModels)
	s.mcp.AddTool(completeMembersTool(), s.handleCompleteMembers)
	s.mcp.AddTool(suggestCandidatesTool(), s.handleSuggestCandidates)
	s.mcp.AddTool(validateMemberTool(), s.handleValidateMember)
}

// getModel resolves a model parameter (falling back to the configured
// default snapshot) to a decoded model, loading and caching it on first
// use
func (s *Server) getModel(ctx context.Context, name string) (*model.Model, error) {
	if name == "" {
		name = s.cfg.DefaultSnapshot
	}
	if name == "" {
		return nil, ErrModelRequired
	}

	s.mu.RLock()
	m, ok := s.models[name]
	s.mu.RUnlock()
	if ok {
		return m, nil
	}

	m, err := s.store.LoadModel(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.models[name] = m
	s.mu.Unlock()
	return m, nil
}

// invalidateModels drops cached snapshots after an import replaced them
func (s *Server) invalidateModels() {
	s.mu.Lock()
	s.models = make(map[string]*model.Model)
	s.mu.Unlock()
}

// collector builds a fresh member collector over a model snapshot.
// The model serves as both provider and accessibility oracle.
func collector(m *model.Model) *member.Collector {
	return member.New(m, m)
}
