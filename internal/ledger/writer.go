// Package ledger owns the two persisted collections of the engine: the
// expense ledger and the budget ledger (budgets plus generated alerts).
//
// Mutations apply to the in-memory collection synchronously and the in-memory
// state stays authoritative. Persistence is asynchronous and coalescing: a
// mutation marks the ledger dirty, and a background writer saves the full
// snapshot as it exists at write time. A failed save is logged and never
// rolled back or retried; the next mutation rewrites the whole snapshot
// anyway.
package ledger

import (
	"context"
	"log/slog"
)

// Persister is the durable side of a ledger: one keyed record per ledger,
// read once at hydration and rewritten wholesale on every save.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type writer struct {
	key       string
	persister Persister
	snapshot  func() ([]byte, error)
	dirty     chan struct{}
	done      chan struct{}
}

func newWriter(key string, p Persister, snapshot func() ([]byte, error)) *writer {
	w := &writer{
		key:       key,
		persister: p,
		snapshot:  snapshot,
		dirty:     make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *writer) run() {
	defer close(w.done)
	for range w.dirty {
		w.flush(context.Background())
	}
}

// mark queues a persistence pass. The single-slot channel coalesces bursts of
// mutations into one write of the latest state.
func (w *writer) mark() {
	select {
	case w.dirty <- struct{}{}:
	default:
	}
}

func (w *writer) flush(ctx context.Context) {
	data, err := w.snapshot()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to marshal ledger snapshot",
			"key", w.key, "error", err)
		return
	}
	if err := w.persister.Save(ctx, w.key, data); err != nil {
		// In-memory state stays authoritative; the caller already saw success.
		slog.ErrorContext(ctx, "Failed to persist ledger snapshot",
			"key", w.key, "error", err)
	}
}

// close stops the background writer and saves one final snapshot.
func (w *writer) close() {
	close(w.dirty)
	<-w.done
	w.flush(context.Background())
}
