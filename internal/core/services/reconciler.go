package services

import (
	"time"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

// TypeCounts maps contribution types to a count for a single day.
type TypeCounts map[domain.ContributionType]int

// DailyCounts maps UTC calendar days to per-type counts. Days and types
// with a zero count are absent.
type DailyCounts map[time.Time]TypeCounts

// Reconcile resolves raw merged events into non-overlapping per-day,
// per-type counts.
//
// The calendar category counts every contribution of a day, so it overlaps
// the typed categories. Typed counts are taken verbatim and the commit count
// is derived as the calendar remainder:
//
//	commit = max(0, calendar - issue - pr - review)
//
// A day whose typed counts exceed the calendar total is a data anomaly, not
// an error; the derived count clamps to zero. Zero counts are dropped so the
// result stays sparse.
func Reconcile(contributions []domain.Contribution) DailyCounts {
	raw := make(DailyCounts)
	for _, c := range contributions {
		day := dayOf(c.OccurredAt)
		counts, ok := raw[day]
		if !ok {
			counts = make(TypeCounts)
			raw[day] = counts
		}
		counts[c.Type] += c.Count
	}

	reconciled := make(DailyCounts, len(raw))
	for day, counts := range raw {
		final := make(TypeCounts, len(counts))
		for kind, count := range counts {
			if kind == domain.TypeCalendar || count == 0 {
				continue
			}
			final[kind] = count
		}

		if calendar, ok := counts[domain.TypeCalendar]; ok {
			derived := calendar
			for kind, count := range final {
				if kind != domain.TypeCommit {
					derived -= count
				}
			}
			if derived > 0 {
				final[domain.TypeCommit] = derived
			}
		}

		if len(final) > 0 {
			reconciled[day] = final
		}
	}
	return reconciled
}

// dayOf truncates an instant to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
