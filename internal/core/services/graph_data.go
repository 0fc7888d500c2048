package services

import (
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

// SeriesSpec names one category to render, its display color, and its
// per-period counts.
type SeriesSpec struct {
	Name   string
	Color  string
	Counts PeriodCounts
}

// BuildGraphData assembles the renderer input: one label per period and one
// cumulative series per spec, in spec order. An empty period axis yields a
// valid "nothing to show" GraphData with empty labels and no series.
func BuildGraphData(periods []domain.Period, specs []SeriesSpec) domain.GraphData {
	if len(periods) == 0 {
		return domain.GraphData{Labels: []string{}, Series: []domain.GraphSeries{}}
	}

	labels := make([]string, len(periods))
	for i, period := range periods {
		labels[i] = period.String()
	}

	series := make([]domain.GraphSeries, 0, len(specs))
	for _, spec := range specs {
		series = append(series, domain.GraphSeries{
			Name:   spec.Name,
			Color:  spec.Color,
			Values: Cumulative(spec.Counts, periods),
		})
	}

	return domain.GraphData{Labels: labels, Series: series}
}
