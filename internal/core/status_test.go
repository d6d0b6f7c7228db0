package core

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		spent        float64
		limit        float64
		wantPct      float64
		wantExceeded bool
		wantTier     Tier
	}{
		{"zero spend", 0, 100, 0, false, TierSafe},
		{"below warning band", 50, 100, 50, false, TierSafe},
		{"warning at 75", 75, 100, 75, false, TierWarning},
		{"warning band", 80, 100, 80, false, TierWarning},
		{"danger at 90", 90, 100, 90, false, TierDanger},
		{"danger band", 99, 100, 99, false, TierDanger},
		{"at limit is danger, not exceeded", 100, 100, 100, false, TierDanger},
		{"over limit", 105, 100, 105, true, TierExceeded},
		{"non-positive limit yields zero percentage", 50, 0, 0, true, TierExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, exceeded, tier := Classify(tt.spent, tt.limit)
			if pct != tt.wantPct {
				t.Errorf("Classify() percentage = %v, want %v", pct, tt.wantPct)
			}
			if exceeded != tt.wantExceeded {
				t.Errorf("Classify() exceeded = %v, want %v", exceeded, tt.wantExceeded)
			}
			if tier != tt.wantTier {
				t.Errorf("Classify() tier = %v, want %v", tier, tt.wantTier)
			}
		})
	}
}

// Exceeded must dominate the percentage tiers even when floating point puts
// the percentage inside the 75-90 band.
func TestClassify_ExceededDominates(t *testing.T) {
	for _, spent := range []float64{100.0000001, 101, 150, 1000} {
		_, exceeded, tier := Classify(spent, 100)
		if !exceeded || tier != TierExceeded {
			t.Errorf("Classify(%v, 100) = exceeded %v tier %v, want exceeded/TierExceeded",
				spent, exceeded, tier)
		}
	}
}

func TestStatus(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	budget := Budget{
		ID:       "b1",
		Category: "Food",
		Amount:   100,
		Period:   Monthly,
	}
	expenses := []Expense{
		expenseOn("Food", 70, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		expenseOn("Food", 10, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
		expenseOn("Rent", 900, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	st := Status(budget, expenses, ref)
	if st.Spent != 80 {
		t.Errorf("Spent = %v, want 80", st.Spent)
	}
	if st.Remaining != 20 {
		t.Errorf("Remaining = %v, want 20", st.Remaining)
	}
	if st.Percentage != 80 {
		t.Errorf("Percentage = %v, want 80", st.Percentage)
	}
	if st.Exceeded {
		t.Error("Exceeded = true, want false")
	}
	if st.Tier != TierWarning {
		t.Errorf("Tier = %v, want %v", st.Tier, TierWarning)
	}
}

func TestStatus_Idempotent(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	budget := Budget{ID: "b1", Category: "Food", Amount: 100, Period: Monthly}
	expenses := []Expense{
		expenseOn("Food", 42.5, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
	}

	a := Status(budget, expenses, ref)
	b := Status(budget, expenses, ref)
	if a != b {
		t.Errorf("Status not idempotent: %+v vs %+v", a, b)
	}
}

func TestStatus_NoExpenses(t *testing.T) {
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	budget := Budget{ID: "b1", Category: "Food", Amount: 100, Period: Monthly}

	st := Status(budget, nil, ref)
	if st.Spent != 0 || st.Percentage != 0 || st.Tier != TierSafe {
		t.Errorf("empty ledger status = %+v, want spent 0, 0%%, safe", st)
	}
}
