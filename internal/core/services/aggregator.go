package services

import (
	"sort"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

// PeriodCounts maps periods to a summed count for one series key.
type PeriodCounts map[domain.Period]int

// Aggregated buckets per-key counts into calendar periods. The key type is
// generic so closed category sets (contribution types) and open-ended ones
// (language names) share the same period-axis and cumulative machinery.
type Aggregated[K comparable] struct {
	counts map[K]PeriodCounts
	seen   []K // insertion order, used as the tiebreak for ordering policies
}

// NewAggregated creates an empty aggregation.
func NewAggregated[K comparable]() *Aggregated[K] {
	return &Aggregated[K]{counts: make(map[K]PeriodCounts)}
}

// Add accumulates a count into a key's period bucket.
func (a *Aggregated[K]) Add(key K, period domain.Period, count int) {
	periods, ok := a.counts[key]
	if !ok {
		periods = make(PeriodCounts)
		a.counts[key] = periods
		a.seen = append(a.seen, key)
	}
	periods[period] += count
}

// Counts returns the period buckets for a key. Missing keys yield nil,
// which Cumulative treats as all zeros.
func (a *Aggregated[K]) Counts(key K) PeriodCounts {
	return a.counts[key]
}

// Has reports whether the key accumulated any count.
func (a *Aggregated[K]) Has(key K) bool {
	_, ok := a.counts[key]
	return ok
}

// Total returns the sum of a key's counts across all periods.
func (a *Aggregated[K]) Total(key K) int {
	total := 0
	for _, count := range a.counts[key] {
		total += count
	}
	return total
}

// Periods returns the sorted union of every period that appears in any
// key's buckets. All series share this one axis; periods a key has no
// counts for contribute zero.
func (a *Aggregated[K]) Periods() []domain.Period {
	set := make(map[domain.Period]struct{})
	for _, periods := range a.counts {
		for period := range periods {
			set[period] = struct{}{}
		}
	}
	out := make([]domain.Period, 0, len(set))
	for period := range set {
		out = append(out, period)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// OrderByPriority returns the keys of the priority list that accumulated
// counts, in priority order. Keys outside the list are excluded.
func (a *Aggregated[K]) OrderByPriority(priority []K) []K {
	var out []K
	for _, key := range priority {
		if a.Has(key) {
			out = append(out, key)
		}
	}
	return out
}

// OrderByTotal returns all keys ordered by total count descending, ties
// broken by first-seen order. Used for open-ended key spaces where no
// priority can be declared up front.
func (a *Aggregated[K]) OrderByTotal() []K {
	out := make([]K, len(a.seen))
	copy(out, a.seen)
	sort.SliceStable(out, func(i, j int) bool {
		return a.Total(out[i]) > a.Total(out[j])
	})
	return out
}

// AggregateContributions rolls reconciled daily counts up into periods.
func AggregateContributions(daily DailyCounts) *Aggregated[domain.ContributionType] {
	agg := NewAggregated[domain.ContributionType]()
	for day, counts := range daily {
		period := domain.PeriodOf(day)
		for kind, count := range counts {
			agg.Add(kind, period, count)
		}
	}
	return agg
}

// AggregateLanguages rolls language entries up into periods keyed by
// language name. The returned color map keeps the first color reported for
// each language.
func AggregateLanguages(languages []domain.Language) (*Aggregated[string], map[string]string) {
	agg := NewAggregated[string]()
	colors := make(map[string]string)
	for _, lang := range languages {
		agg.Add(lang.Name, domain.PeriodOf(lang.OccurredAt), lang.Size)
		if _, ok := colors[lang.Name]; !ok && lang.Color != "" {
			colors[lang.Name] = lang.Color
		}
	}
	return agg, colors
}

// Cumulative walks the shared period axis accumulating a running sum. The
// result always has one value per period; periods with no fresh count repeat
// the running total, so the series is monotonically non-decreasing.
func Cumulative(counts PeriodCounts, periods []domain.Period) []int {
	out := make([]int, len(periods))
	running := 0
	for i, period := range periods {
		running += counts[period]
		out[i] = running
	}
	return out
}
