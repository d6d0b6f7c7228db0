// Package cache implements the derived read layer between the ledgers and
// read-mostly consumers. Each View caches the result of one logical query;
// a ledger mutation invalidates the view, which then refetches from the live
// ledger. The cache is eventually consistent: the ledger is the source of
// truth and a refetch always resolves to the ledger state at resolution time,
// never to a snapshot captured when the invalidation happened.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// View is a pull-through cached snapshot of one logical ledger query.
type View[T any] struct {
	name    string
	fetch   func() T
	latency time.Duration

	mu      sync.Mutex
	val     T
	fresh   bool
	version uint64

	group singleflight.Group
}

// NewView builds a view over fetch, which must read the live ledger state.
// latency, when non-zero, simulates refetch delay ahead of the fetch.
func NewView[T any](name string, fetch func() T, latency time.Duration) *View[T] {
	return &View[T]{name: name, fetch: fetch, latency: latency}
}

// Get returns the cached value, refetching first if the view is stale.
func (v *View[T]) Get() T {
	v.mu.Lock()
	if v.fresh {
		val := v.val
		v.mu.Unlock()
		return val
	}
	v.mu.Unlock()
	return v.refetch()
}

// Invalidate marks the view stale and triggers an asynchronous refetch.
// Safe to call from any mutation path; bursts coalesce via singleflight.
func (v *View[T]) Invalidate() {
	v.mu.Lock()
	v.fresh = false
	v.version++
	v.mu.Unlock()
	go v.refetch()
}

func (v *View[T]) refetch() T {
	res, _, _ := v.group.Do(v.name, func() (any, error) {
		v.mu.Lock()
		started := v.version
		v.mu.Unlock()

		if v.latency > 0 {
			time.Sleep(v.latency)
		}
		val := v.fetch()

		v.mu.Lock()
		v.val = val
		// An invalidation that raced this fetch leaves the view stale so the
		// next Get refetches again; last write wins.
		if v.version == started {
			v.fresh = true
		}
		v.mu.Unlock()
		return val, nil
	})
	return res.(T)
}
