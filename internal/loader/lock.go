package loader

import "sync/atomic"

// LoadLock keeps snapshot imports single-flight. The database is opened
// with a single writer connection, so a second concurrent import would
// only queue behind the first; failing fast with ErrLoadInProgress gives
// the caller something actionable instead.
type LoadLock struct {
	held atomic.Bool
}

// TryAcquire claims the lock without blocking and reports whether it
// succeeded.
func (l *LoadLock) TryAcquire() bool {
	return l.held.CompareAndSwap(false, true)
}

// Release frees the lock. Only the caller that acquired it may release.
func (l *LoadLock) Release() {
	l.held.Store(false)
}
