package services

import (
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

// WindowStep is the calendar-aware span of a single query window.
type WindowStep struct {
	Years  int
	Months int
}

// IsZero reports whether the step would not advance a date at all.
func (s WindowStep) IsZero() bool {
	return s.Years == 0 && s.Months == 0
}

// PlanWindows splits a half-open range into contiguous, non-overlapping
// sub-ranges, each no longer than one step. Stepping is calendar-aware
// (AddDate) so windows stay aligned to month and year boundaries; the last
// window is clamped to the range end.
//
// An empty or inverted range yields nil so callers can skip fetching without
// a separate check. A zero step yields a single window covering the whole
// range.
func PlanWindows(r domain.DateRange, step WindowStep) []domain.DateRange {
	if r.IsEmpty() {
		return nil
	}
	if step.IsZero() {
		return []domain.DateRange{r}
	}

	var windows []domain.DateRange
	for cur := r.From; cur.Before(r.To); {
		next := cur.AddDate(step.Years, step.Months, 0)
		if next.After(r.To) {
			next = r.To
		}
		windows = append(windows, domain.DateRange{From: cur, To: next})
		cur = next
	}
	return windows
}
