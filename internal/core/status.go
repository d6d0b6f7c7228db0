package core

import "time"

const (
	TierSafe     Tier = "safe"
	TierWarning  Tier = "warning"
	TierDanger   Tier = "danger"
	TierExceeded Tier = "exceeded"
)

type (
	// Tier is the discrete classification of a spent/limit ratio.
	Tier string

	// BudgetStatus is the derived, never-persisted view of one budget in its
	// current cycle. Recomputation is idempotent for a fixed ledger snapshot
	// and reference instant.
	BudgetStatus struct {
		Budget     Budget
		Spent      float64
		Remaining  float64
		Percentage float64
		Exceeded   bool
		Tier       Tier
	}
)

// Classify maps a spent/limit pair to its percentage, exceeded flag and tier.
// Exceeded dominates the percentage tiers: spent > limit is always
// TierExceeded, even when floating point leaves the percentage inside the
// 75-90 band. A non-positive limit yields 0% rather than a division by zero.
func Classify(spent, limit float64) (percentage float64, exceeded bool, tier Tier) {
	if limit > 0 {
		percentage = spent / limit * 100
	}
	exceeded = spent > limit

	switch {
	case exceeded:
		tier = TierExceeded
	case percentage >= 90:
		tier = TierDanger
	case percentage >= 75:
		tier = TierWarning
	default:
		tier = TierSafe
	}
	return percentage, exceeded, tier
}

// Status computes the derived status of one budget against the expense
// collection, using the cycle containing ref.
func Status(b Budget, expenses []Expense, ref time.Time) BudgetStatus {
	spend := SumCategory(expenses, b.Period.Window(ref), b.Category)
	percentage, exceeded, tier := Classify(spend.Spent, b.Amount)

	return BudgetStatus{
		Budget:     b,
		Spent:      spend.Spent,
		Remaining:  b.Amount - spend.Spent,
		Percentage: percentage,
		Exceeded:   exceeded,
		Tier:       tier,
	}
}
