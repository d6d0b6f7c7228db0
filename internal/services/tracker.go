// Package services wires the ledgers, the violation detector, the read cache
// and the alert notifier into the engine's read/write contract.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"budgetwatch/internal/cache"
	"budgetwatch/internal/core"
	"budgetwatch/internal/ledger"
)

// AlertPublisher pushes generated alerts to an external consumer.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert core.BudgetAlert) error
}

// Tracker is the engine facade consumed by presentation collaborators.
// All mutations apply to the in-memory ledgers synchronously; persistence,
// cache refetches and notifications are asynchronous best effort.
type Tracker struct {
	expenses *ledger.ExpenseLedger
	budgets  *ledger.BudgetLedger
	notifier AlertPublisher
	now      func() time.Time

	expenseView *cache.View[[]core.Expense]
	budgetView  *cache.View[[]core.Budget]
	alertView   *cache.View[[]core.BudgetAlert]
}

// NewTracker builds the engine over the two hydrated ledgers. notifier may be
// nil to disable alert publishing. refetchLatency simulates read-cache refetch
// delay; zero disables it.
func NewTracker(expenses *ledger.ExpenseLedger, budgets *ledger.BudgetLedger, notifier AlertPublisher, refetchLatency time.Duration) *Tracker {
	t := &Tracker{
		expenses: expenses,
		budgets:  budgets,
		notifier: notifier,
		now:      time.Now,
	}
	t.expenseView = cache.NewView("expenses", expenses.List, refetchLatency)
	t.budgetView = cache.NewView("budgets", budgets.List, refetchLatency)
	t.alertView = cache.NewView("budget-alerts", budgets.Alerts, refetchLatency)
	return t
}

// Hydrated reports whether both ledgers completed their initial load.
func (t *Tracker) Hydrated() bool {
	return t.expenses.Hydrated() && t.budgets.Hydrated()
}

// AddExpense validates and records an expense, checking every matching budget
// for a violation first. The detector reads the expense collection before the
// insert so the candidate is never counted in its own aggregation. Generated
// alerts are appended to the budget ledger and returned.
func (t *Tracker) AddExpense(ctx context.Context, e core.Expense) ([]core.BudgetAlert, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate expense: %w", err)
	}

	now := t.now()
	alerts := core.DetectViolations(t.budgets.List(), t.expenses.List(), e, now)

	t.expenses.Add(e)
	for _, a := range alerts {
		t.budgets.AppendAlert(a)
	}

	t.expenseView.Invalidate()
	if len(alerts) > 0 {
		t.alertView.Invalidate()
		t.publish(ctx, alerts)
	}

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID, "category", e.Category, "amount", e.Amount, "alerts", len(alerts))

	return alerts, nil
}

// UpdateExpense replaces an expense in place, re-running the violation check
// against the collection minus the edited record so its old amount does not
// inflate the projection.
func (t *Tracker) UpdateExpense(ctx context.Context, e core.Expense) ([]core.BudgetAlert, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate expense: %w", err)
	}

	now := t.now()
	pre := make([]core.Expense, 0)
	for _, x := range t.expenses.List() {
		if x.ID != e.ID {
			pre = append(pre, x)
		}
	}
	alerts := core.DetectViolations(t.budgets.List(), pre, e, now)

	t.expenses.Update(e)
	for _, a := range alerts {
		t.budgets.AppendAlert(a)
	}

	t.expenseView.Invalidate()
	if len(alerts) > 0 {
		t.alertView.Invalidate()
		t.publish(ctx, alerts)
	}

	return alerts, nil
}

func (t *Tracker) RemoveExpense(ctx context.Context, id string) {
	t.expenses.Remove(id)
	t.expenseView.Invalidate()
	slog.InfoContext(ctx, "Expense removed", "id", id)
}

func (t *Tracker) ClearExpenses(ctx context.Context) {
	t.expenses.Clear()
	t.expenseView.Invalidate()
	slog.InfoContext(ctx, "Expenses cleared")
}

// ListExpenses reads through the cache, newest first.
func (t *Tracker) ListExpenses(ctx context.Context) []core.Expense {
	return t.expenseView.Get()
}

// AddBudget assigns identity and timestamps, validates and records the budget.
func (t *Tracker) AddBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	now := t.now()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := b.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("validate budget: %w", err)
	}

	t.budgets.Add(b)
	t.budgetView.Invalidate()
	slog.InfoContext(ctx, "Budget added",
		"id", b.ID, "category", b.Category, "amount", b.Amount, "period", b.Period)
	return b, nil
}

// UpdateBudget applies a last-write-wins edit, bumping UpdatedAt. There is no
// history of previous versions.
func (t *Tracker) UpdateBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("validate budget: %w", err)
	}

	b.UpdatedAt = t.now()
	t.budgets.Update(b)
	t.budgetView.Invalidate()
	slog.InfoContext(ctx, "Budget updated", "id", b.ID)
	return nil
}

// RemoveBudget deletes the budget. Alerts it generated stay in the alert log.
func (t *Tracker) RemoveBudget(ctx context.Context, id string) {
	t.budgets.Remove(id)
	t.budgetView.Invalidate()
	slog.InfoContext(ctx, "Budget removed", "id", id)
}

func (t *Tracker) ClearBudgets(ctx context.Context) {
	t.budgets.Clear()
	t.budgetView.Invalidate()
	slog.InfoContext(ctx, "Budgets cleared")
}

// ListBudgets reads through the cache.
func (t *Tracker) ListBudgets(ctx context.Context) []core.Budget {
	return t.budgetView.Get()
}

// ListAlerts reads through the cache.
func (t *Tracker) ListAlerts(ctx context.Context) []core.BudgetAlert {
	return t.alertView.Get()
}

func (t *Tracker) ClearAlerts(ctx context.Context) {
	t.budgets.ClearAlerts()
	t.alertView.Invalidate()
	slog.InfoContext(ctx, "Alerts cleared")
}

// BudgetStatuses derives the status of every budget for the cycle containing
// ref; a zero ref means now. Statuses are computed from the live ledgers,
// never stored, and are idempotent for fixed ledger state and ref.
func (t *Tracker) BudgetStatuses(ref time.Time) []core.BudgetStatus {
	if ref.IsZero() {
		ref = t.now()
	}

	expenses := t.expenses.List()
	budgets := t.budgets.List()

	statuses := make([]core.BudgetStatus, len(budgets))
	for i, b := range budgets {
		statuses[i] = core.Status(b, expenses, ref)
	}
	return statuses
}

func (t *Tracker) publish(ctx context.Context, alerts []core.BudgetAlert) {
	if t.notifier == nil {
		return
	}
	for _, a := range alerts {
		if err := t.notifier.PublishAlert(ctx, a); err != nil {
			// Best effort: the alert is already recorded in the ledger.
			slog.ErrorContext(ctx, "Failed to publish alert",
				"alert_id", a.ID, "error", err)
		}
	}
}
