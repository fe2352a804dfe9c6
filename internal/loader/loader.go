package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mwhelan/semview-mcp/internal/model"
	"github.com/mwhelan/semview-mcp/internal/storage"
)

// ErrLoadInProgress is returned when another import is already running
var ErrLoadInProgress = errors.New("another snapshot import is already running")

// Loader imports compiler snapshot exports into the store:
// read -> decode -> validate -> persist.
type Loader struct {
	store storage.Store
	lock  LoadLock

	// Worker pool configuration
	workers int
}

// Config contains configuration for the loader
type Config struct {
	Workers int  // Number of concurrent workers (default: runtime.NumCPU())
	Replace bool // Whether to overwrite snapshots stored under the same name
}

// Stats contains statistics about one import operation
type Stats struct {
	SnapshotsLoaded int
	SnapshotsFailed int
	ClassesLoaded   int
	EntitiesLoaded  int
	Duration        time.Duration
	ErrorMessages   []string
}

// New creates a new Loader instance
func New(store storage.Store) *Loader {
	return &Loader{
		store:   store,
		workers: runtime.NumCPU(),
	}
}

// LoadFile imports a single snapshot file and returns its stored metadata
func (l *Loader) LoadFile(ctx context.Context, path string, config *Config) (*storage.Snapshot, error) {
	if config == nil {
		config = &Config{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	m, err := model.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	snap, err := l.store.SaveModel(ctx, m, config.Replace)
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot %s: %w", path, err)
	}

	return snap, nil
}

// LoadAll imports a batch of snapshot files concurrently. Decoding and
// validation run in parallel; individual file failures are recorded in the
// stats and do not abort the remaining files.
func (l *Loader) LoadAll(ctx context.Context, paths []string, config *Config) (*Stats, error) {
	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = l.workers
	}

	if !l.lock.TryAcquire() {
		return nil, ErrLoadInProgress
	}
	defer l.lock.Release()

	startTime := time.Now()
	stats := &Stats{
		ErrorMessages: make([]string, 0),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var mu sync.Mutex // protects stats

	for _, path := range paths {
		g.Go(func() error {
			snap, err := l.LoadFile(gctx, path, config)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.SnapshotsFailed++
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", path, err))
				// Continue with other files
				return nil
			}
			stats.SnapshotsLoaded++
			stats.ClassesLoaded += snap.ClassCount
			stats.EntitiesLoaded += snap.EntityCount
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(startTime)
	return stats, nil
}
