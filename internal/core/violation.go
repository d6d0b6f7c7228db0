package core

import (
	"time"

	"github.com/google/uuid"
)

// DetectViolations evaluates a candidate expense against every budget with a
// matching category and returns the alerts to record, possibly none.
//
// The window is always the budget's cycle at now, not at the candidate's date:
// violations are judged against the current period regardless of when the
// expense is dated. The expenses slice must be the pre-mutation collection so
// the candidate is not counted twice.
//
// An alert is emitted iff the projected spend goes over the limit or reaches
// 100% of it. Staying below the threshold is silent. Multiple budgets on the
// same category each produce their own alert.
func DetectViolations(budgets []Budget, expenses []Expense, candidate Expense, now time.Time) []BudgetAlert {
	var alerts []BudgetAlert

	for _, b := range budgets {
		if b.Category != candidate.Category {
			continue
		}

		existing := SumCategory(expenses, b.Period.Window(now), b.Category)
		projected := existing.Spent + sanitizeAmount(candidate.Amount)
		percentage := projected / b.Amount * 100
		willExceed := projected > b.Amount

		if !willExceed && percentage < 100 {
			continue
		}

		alerts = append(alerts, BudgetAlert{
			ID:         uuid.NewString(),
			BudgetID:   b.ID,
			Category:   b.Category,
			Spent:      projected,
			Budget:     b.Amount,
			Percentage: percentage,
			Exceeded:   willExceed,
			CreatedAt:  now,
		})
	}

	return alerts
}
