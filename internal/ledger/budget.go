package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"budgetwatch/internal/core"
)

// BudgetsKey addresses the budget ledger's durable record. Budgets and their
// alerts persist together as one snapshot.
const BudgetsKey = "budgets.v1"

type budgetSnapshot struct {
	Budgets []core.Budget      `json:"budgets"`
	Alerts  []core.BudgetAlert `json:"alerts"`
}

// BudgetLedger owns the persisted budgets and the append-only alert log.
type BudgetLedger struct {
	mu       sync.Mutex
	budgets  []core.Budget
	alerts   []core.BudgetAlert
	hydrated bool
	w        *writer
}

func NewBudgetLedger(p Persister) *BudgetLedger {
	l := &BudgetLedger{}
	l.w = newWriter(BudgetsKey, p, l.marshal)
	return l
}

// Hydrate loads the durable record once at startup. Missing or malformed data
// starts the ledger empty; the hydrated flag is set either way.
func (l *BudgetLedger) Hydrate(ctx context.Context) {
	data, err := l.w.persister.Load(ctx, BudgetsKey)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load budget ledger, starting empty", "error", err)
	}

	var snap budgetSnapshot
	if len(data) > 0 {
		if err := json.Unmarshal(data, &snap); err != nil {
			slog.WarnContext(ctx, "Malformed budget snapshot, starting empty", "error", err)
			snap = budgetSnapshot{}
		}
	}

	l.mu.Lock()
	l.budgets = snap.Budgets
	l.alerts = snap.Alerts
	l.hydrated = true
	l.mu.Unlock()

	slog.InfoContext(ctx, "Budget ledger hydrated",
		"budgets", len(snap.Budgets), "alerts", len(snap.Alerts))
}

func (l *BudgetLedger) Hydrated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hydrated
}

func (l *BudgetLedger) Add(b core.Budget) {
	l.mu.Lock()
	l.budgets = append(l.budgets, b)
	l.mu.Unlock()
	l.w.mark()
}

// Update replaces the budget with the same ID, last write wins. CreatedAt is
// preserved from the stored record; the caller stamps UpdatedAt.
func (l *BudgetLedger) Update(b core.Budget) {
	l.mu.Lock()
	for i := range l.budgets {
		if l.budgets[i].ID == b.ID {
			b.CreatedAt = l.budgets[i].CreatedAt
			l.budgets[i] = b
			break
		}
	}
	l.mu.Unlock()
	l.w.mark()
}

// Remove deletes the budget. Historical alerts referencing it stay in place.
func (l *BudgetLedger) Remove(id string) {
	l.mu.Lock()
	next := l.budgets[:0]
	for _, b := range l.budgets {
		if b.ID != id {
			next = append(next, b)
		}
	}
	l.budgets = next
	l.mu.Unlock()
	l.w.mark()
}

func (l *BudgetLedger) Clear() {
	l.mu.Lock()
	l.budgets = nil
	l.mu.Unlock()
	l.w.mark()
}

func (l *BudgetLedger) List() []core.Budget {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Budget(nil), l.budgets...)
}

// AppendAlert records a generated alert. Alerts are facts: appended here,
// never edited, only bulk-cleared.
func (l *BudgetLedger) AppendAlert(a core.BudgetAlert) {
	l.mu.Lock()
	l.alerts = append(l.alerts, a)
	l.mu.Unlock()
	l.w.mark()
}

func (l *BudgetLedger) Alerts() []core.BudgetAlert {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.BudgetAlert(nil), l.alerts...)
}

func (l *BudgetLedger) ClearAlerts() {
	l.mu.Lock()
	l.alerts = nil
	l.mu.Unlock()
	l.w.mark()
}

// Close flushes the final snapshot and stops the background writer.
func (l *BudgetLedger) Close() {
	l.w.close()
}

func (l *BudgetLedger) marshal() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return json.Marshal(budgetSnapshot{Budgets: l.budgets, Alerts: l.alerts})
}
