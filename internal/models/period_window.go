package models

import "time"

// DateRange is an inclusive calendar-day span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, inclusive on both ends.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// PeriodWindow is the resolved form of a (period_type, start, end) request: the
// echoed window bounds plus the predicate the store applies before aggregating.
//
// Ranges carries the predicate as a union of inclusive day spans. For "year" and
// "date" windows this is a single span. For "month" windows it is the literal
// year-band x month-band cross product of the request — one span per matching
// year-month pair — which is NOT a chronological range when the span crosses a
// year boundary with a descending month band (e.g. 2024-11 to 2025-02 produces
// an empty band and therefore zero spans). An empty Ranges matches nothing.
type PeriodWindow struct {
	RangeStart  time.Time
	RangeEnd    time.Time
	Ranges      []DateRange
	Subcategory string
}

// Matches reports whether the window predicate accepts a transaction date.
// The optional subcategory filter is a store-side concern and is not applied here.
func (w *PeriodWindow) Matches(d time.Time) bool {
	for _, r := range w.Ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// Empty reports whether the predicate can never match.
func (w *PeriodWindow) Empty() bool {
	return len(w.Ranges) == 0
}
