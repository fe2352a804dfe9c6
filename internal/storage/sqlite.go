package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwhelan/semview-mcp/internal/model"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore creates a new SQLite store instance
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveModel persists a decoded model in one transaction
func (s *SQLiteStore) SaveModel(ctx context.Context, m *model.Model, replace bool) (*Snapshot, error) {
	existing, err := s.GetSnapshot(ctx, m.Name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if !replace {
			return nil, fmt.Errorf("snapshot %q: %w", m.Name, ErrAlreadyExists)
		}
		if err := s.DeleteSnapshot(ctx, m.Name); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap := &Snapshot{
		UID:        uuid.NewString(),
		Name:       m.Name,
		Compiler:   m.Compiler,
		ClassCount: len(m.Classes()),
		CreatedAt:  time.Now(),
	}
	for _, cls := range m.Classes() {
		snap.EntityCount += len(cls.Decls)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (uid, name, compiler, class_count, entity_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.UID, snap.Name, snap.Compiler, snap.ClassCount, snap.EntityCount, snap.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	snap.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// First pass: class rows, remembering ids for linearization wiring
	classIDs := make(map[string]int64, snap.ClassCount)
	for pos, cls := range m.Classes() {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO classes (snapshot_id, name, is_module, position) VALUES (?, ?, ?, ?)`,
			snap.ID, cls.Name, cls.IsModule, pos)
		if err != nil {
			return nil, fmt.Errorf("failed to insert class %s: %w", cls.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		classIDs[cls.Name] = id
	}

	// Second pass: entities and linearizations
	for _, cls := range m.Classes() {
		classID := classIDs[cls.Name]

		for i, e := range cls.Decls {
			sigs, err := json.Marshal(e.Signatures)
			if err != nil {
				return nil, fmt.Errorf("failed to encode signatures of %s.%s: %w", cls.Name, e.Name, err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO entities (class_id, name, kind, is_private, is_synthetic, is_constructor, is_module, signatures, decl_index)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				classID, e.Name, string(e.Kind), e.IsPrivate, e.IsSynthetic, e.IsConstructor, e.IsModule, string(sigs), i)
			if err != nil {
				return nil, fmt.Errorf("failed to insert entity %s.%s: %w", cls.Name, e.Name, err)
			}
		}

		for pos, base := range cls.Linearization {
			baseID, ok := classIDs[base.Name]
			if !ok {
				return nil, fmt.Errorf("linearization of %s references class %s outside the snapshot", cls.Name, base.Name)
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO linearization (class_id, position, base_id) VALUES (?, ?, ?)`,
				classID, pos, baseID)
			if err != nil {
				return nil, fmt.Errorf("failed to insert linearization of %s: %w", cls.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snap, nil
}

// LoadModel reconstructs the model stored under name. The rows are
// re-assembled into the snapshot wire form and run through the same
// validation as a fresh compiler export.
func (s *SQLiteStore) LoadModel(ctx context.Context, name string) (*model.Model, error) {
	snap, err := s.GetSnapshot(ctx, name)
	if err != nil {
		return nil, err
	}

	wire := &model.Snapshot{Name: snap.Name, Compiler: snap.Compiler}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, is_module FROM classes WHERE snapshot_id = ? ORDER BY position`, snap.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load classes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	classNames := make(map[int64]string)
	var classIDs []int64
	for rows.Next() {
		var id int64
		var sc model.SnapshotClass
		if err := rows.Scan(&id, &sc.Name, &sc.Module); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classNames[id] = sc.Name
		classIDs = append(classIDs, id)
		wire.Classes = append(wire.Classes, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, classID := range classIDs {
		decls, err := s.loadDecls(ctx, classID)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", wire.Classes[i].Name, err)
		}
		wire.Classes[i].Decls = decls

		lin, err := s.loadLinearization(ctx, classID, classNames)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", wire.Classes[i].Name, err)
		}
		wire.Classes[i].Linearization = lin
	}

	m, err := model.Build(wire)
	if err != nil {
		return nil, fmt.Errorf("stored snapshot %q is inconsistent: %w", name, err)
	}
	return m, nil
}

func (s *SQLiteStore) loadDecls(ctx context.Context, classID int64) ([]model.SnapshotDecl, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, is_private, is_synthetic, is_constructor, is_module, signatures
		 FROM entities WHERE class_id = ? ORDER BY decl_index`, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var decls []model.SnapshotDecl
	for rows.Next() {
		var d model.SnapshotDecl
		var sigs string
		if err := rows.Scan(&d.Name, &d.Kind, &d.Private, &d.Synthetic, &d.Constructor, &d.Module, &sigs); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		if err := json.Unmarshal([]byte(sigs), &d.Signatures); err != nil {
			return nil, fmt.Errorf("failed to decode signatures of %s: %w", d.Name, err)
		}
		decls = append(decls, d)
	}
	return decls, rows.Err()
}

func (s *SQLiteStore) loadLinearization(ctx context.Context, classID int64, classNames map[int64]string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT base_id FROM linearization WHERE class_id = ? ORDER BY position`, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linearization: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lin []string
	for rows.Next() {
		var baseID int64
		if err := rows.Scan(&baseID); err != nil {
			return nil, fmt.Errorf("failed to scan linearization: %w", err)
		}
		name, ok := classNames[baseID]
		if !ok {
			return nil, fmt.Errorf("linearization references class id %d outside the snapshot", baseID)
		}
		lin = append(lin, name)
	}
	return lin, rows.Err()
}

// GetSnapshot returns the metadata of the snapshot stored under name
func (s *SQLiteStore) GetSnapshot(ctx context.Context, name string) (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, uid, name, compiler, class_count, entity_count, created_at
		 FROM snapshots WHERE name = ?`, name).
		Scan(&snap.ID, &snap.UID, &snap.Name, &snap.Compiler, &snap.ClassCount, &snap.EntityCount, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns metadata for all stored snapshots, newest first
func (s *SQLiteStore) ListSnapshots(ctx context.Context) ([]*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, uid, name, compiler, class_count, entity_count, created_at
		 FROM snapshots ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []*Snapshot
	for rows.Next() {
		snap := &Snapshot{}
		if err := rows.Scan(&snap.ID, &snap.UID, &snap.Name, &snap.Compiler, &snap.ClassCount, &snap.EntityCount, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// DeleteSnapshot removes a snapshot and, through cascading deletes, its
// classes, entities and linearizations
func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
	}
	return nil
}
