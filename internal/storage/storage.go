package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mwhelan/semview-mcp/internal/model"
)

var (
	// ErrNotFound is returned when a requested snapshot doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when saving a snapshot under a taken name
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for persisting and loading semantic-model
// snapshots. It stores compiler input models only; member-query results
// are never persisted.
type Store interface {
	// SaveModel persists a decoded model under meta.Name in one
	// transaction. When replace is false a taken name is an error.
	SaveModel(ctx context.Context, m *model.Model, replace bool) (*Snapshot, error)

	// LoadModel reconstructs the model stored under name
	LoadModel(ctx context.Context, name string) (*model.Model, error)

	// Snapshot metadata operations
	GetSnapshot(ctx context.Context, name string) (*Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*Snapshot, error)
	DeleteSnapshot(ctx context.Context, name string) error

	// Database operations
	Close() error
}

// Snapshot holds the stored metadata of one semantic-model snapshot
type Snapshot struct {
	ID          int64
	UID         string // stable identifier assigned at save time
	Name        string
	Compiler    string
	ClassCount  int
	EntityCount int
	CreatedAt   time.Time
}
