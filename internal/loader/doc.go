// Package loader coordinates importing compiler snapshot exports into the
// snapshot store.
//
// The pipeline per file is read -> decode -> validate -> persist. Batch
// imports fan out across an errgroup-bounded worker pool; a malformed file
// is recorded in the statistics and skipped rather than aborting the
// batch, since nightly CI typically exports one snapshot per compilation
// unit and a single bad export should not block the rest.
//
//	ldr := loader.New(store)
//
//	stats, err := ldr.LoadAll(ctx, paths, &loader.Config{Replace: true})
//	fmt.Printf("loaded %d snapshots in %v\n", stats.SnapshotsLoaded, stats.Duration)
//
// Imports are single-flight: a second concurrent LoadAll returns
// ErrLoadInProgress immediately instead of queueing behind the
// single-writer database.
package loader
