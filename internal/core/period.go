package core

import "time"

// Window is the inclusive [Start, End] range covering one budget cycle.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Window resolves the cycle containing ref for this period granularity.
// Weeks start on Sunday. An unknown period resolves as monthly.
// Pure: same inputs always yield the same window.
func (p Period) Window(ref time.Time) Window {
	y, m, d := ref.Date()
	loc := ref.Location()

	switch p {
	case Daily:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
	case Weekly:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -int(ref.Weekday()))
		return Window{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
	case Yearly:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	case Monthly:
		fallthrough
	default:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
	}
}
