package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"budgetwatch/internal/core"
)

// ExpensesKey addresses the expense ledger's durable record.
const ExpensesKey = "expenses.v1"

type expenseSnapshot struct {
	Expenses []core.Expense `json:"expenses"`
}

// ExpenseLedger owns the persisted collection of expense records.
type ExpenseLedger struct {
	mu       sync.Mutex
	items    []core.Expense
	hydrated bool
	w        *writer
}

func NewExpenseLedger(p Persister) *ExpenseLedger {
	l := &ExpenseLedger{}
	l.w = newWriter(ExpensesKey, p, l.marshal)
	return l
}

// Hydrate loads the durable record once at startup. Missing or malformed data
// is treated as an empty ledger, never an error: the hydrated flag is set
// regardless so collaborators can tell "loaded empty" from "not yet loaded".
func (l *ExpenseLedger) Hydrate(ctx context.Context) {
	data, err := l.w.persister.Load(ctx, ExpensesKey)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load expense ledger, starting empty", "error", err)
	}

	var snap expenseSnapshot
	if len(data) > 0 {
		if err := json.Unmarshal(data, &snap); err != nil {
			slog.WarnContext(ctx, "Malformed expense snapshot, starting empty", "error", err)
			snap.Expenses = nil
		}
	}

	l.mu.Lock()
	l.items = snap.Expenses
	l.hydrated = true
	l.mu.Unlock()

	slog.InfoContext(ctx, "Expense ledger hydrated", "count", len(snap.Expenses))
}

func (l *ExpenseLedger) Hydrated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hydrated
}

// Add prepends the expense, newest first.
func (l *ExpenseLedger) Add(e core.Expense) {
	l.mu.Lock()
	l.items = append([]core.Expense{e}, l.items...)
	l.mu.Unlock()
	l.w.mark()
}

// Update replaces the expense with the same ID. An unknown ID is a no-op;
// the identifier itself is immutable.
func (l *ExpenseLedger) Update(e core.Expense) {
	l.mu.Lock()
	for i := range l.items {
		if l.items[i].ID == e.ID {
			l.items[i] = e
			break
		}
	}
	l.mu.Unlock()
	l.w.mark()
}

func (l *ExpenseLedger) Remove(id string) {
	l.mu.Lock()
	next := l.items[:0]
	for _, e := range l.items {
		if e.ID != id {
			next = append(next, e)
		}
	}
	l.items = next
	l.mu.Unlock()
	l.w.mark()
}

func (l *ExpenseLedger) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
	l.w.mark()
}

// List returns a copy of the current collection, newest first.
func (l *ExpenseLedger) List() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Expense(nil), l.items...)
}

// Close flushes the final snapshot and stops the background writer.
func (l *ExpenseLedger) Close() {
	l.w.close()
}

func (l *ExpenseLedger) marshal() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return json.Marshal(expenseSnapshot{Expenses: l.items})
}
