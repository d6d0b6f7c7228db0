package core

import "math"

// CategorySpend is the result of aggregating one category over one window.
type CategorySpend struct {
	Spent float64
	Count int
}

// SumCategory sums the expenses whose date falls inside the window and whose
// category equals category exactly (no normalization). Negative or non-finite
// amounts contribute 0 to the sum but still count as matches.
func SumCategory(expenses []Expense, w Window, category string) CategorySpend {
	var out CategorySpend
	for _, e := range expenses {
		if e.Category != category {
			continue
		}
		if !w.Contains(e.Date) {
			continue
		}
		out.Spent += sanitizeAmount(e.Amount)
		out.Count++
	}
	return out
}

// sanitizeAmount coerces an amount to non-negative finite for aggregation.
// Storage keeps the raw value; only sums are protected.
func sanitizeAmount(a float64) float64 {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
