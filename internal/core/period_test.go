package core

import (
	"testing"
	"time"
)

func TestPeriod_Window(t *testing.T) {
	ref := time.Date(2024, 3, 15, 13, 45, 12, 0, time.UTC) // a Friday

	tests := []struct {
		name      string
		period    Period
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "daily covers the calendar day",
			period:    Daily,
			wantStart: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "weekly starts on Sunday",
			period:    Weekly,
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 16, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "monthly covers the calendar month",
			period:    Monthly,
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "yearly covers the calendar year",
			period:    Yearly,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "unknown period falls back to monthly",
			period:    Period("quarterly"),
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.period.Window(ref)
			if !w.Start.Equal(tt.wantStart) {
				t.Errorf("Window().Start = %v, want %v", w.Start, tt.wantStart)
			}
			if !w.End.Equal(tt.wantEnd) {
				t.Errorf("Window().End = %v, want %v", w.End, tt.wantEnd)
			}
		})
	}
}

func TestPeriod_Window_ContainsReference(t *testing.T) {
	refs := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), // leap day
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2023, 7, 9, 6, 30, 0, 0, time.UTC), // a Sunday
	}

	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		for _, ref := range refs {
			w := p.Window(ref)
			if !w.Contains(ref) {
				t.Errorf("%s window %v..%v does not contain reference %v",
					p, w.Start, w.End, ref)
			}
		}
	}
}

func TestPeriod_Window_Stable(t *testing.T) {
	ref := time.Date(2024, 6, 20, 9, 15, 0, 0, time.UTC)
	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		a := p.Window(ref)
		b := p.Window(ref)
		if !a.Start.Equal(b.Start) || !a.End.Equal(b.End) {
			t.Errorf("%s window not stable: %v vs %v", p, a, b)
		}
	}
}

func TestPeriod_Window_FebruaryMonthly(t *testing.T) {
	ref := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	w := Monthly.Window(ref)
	wantEnd := time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC)
	if !w.End.Equal(wantEnd) {
		t.Errorf("leap February end = %v, want %v", w.End, wantEnd)
	}
}
