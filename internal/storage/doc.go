// Package storage persists semantic-model snapshots in SQLite.
//
// The store keeps the compiler's *input* model only: classes, declared
// entities with their overload signatures, and the pre-linearized
// base-class sequences. Member-query results are computed fresh on every
// call and never cached here.
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStore("/path/to/semview.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	snap, err := store.SaveModel(ctx, m, false)
//	m2, err := store.LoadModel(ctx, snap.Name)
//
// LoadModel re-assembles the rows into the snapshot wire form and runs
// them through the same validation as a fresh compiler export, so a
// corrupted database surfaces as a load error rather than as silently
// wrong member queries.
//
// # Build Modes
//
// Two SQLite drivers are supported via build tags:
//
//	go build ./...                               // modernc.org/sqlite (pure Go)
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./... // mattn/go-sqlite3 (CGO)
//
// # Schema
//
// snapshots -> classes -> entities, plus a linearization table keyed by
// (class, position) holding the verbatim base-class order. Deleting a
// snapshot cascades through all dependent rows.
package storage
