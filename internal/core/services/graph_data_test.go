package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/services"
)

func TestBuildGraphData(t *testing.T) {
	t.Run("labels and cumulative series share one axis", func(t *testing.T) {
		periods := []domain.Period{period(2024, 1), period(2024, 2), period(2024, 3)}
		specs := []services.SeriesSpec{
			{Name: "commit", Color: "#000000", Counts: services.PeriodCounts{
				period(2024, 1): 4,
				period(2024, 3): 6,
			}},
			{Name: "issue", Color: "#ffffff", Counts: services.PeriodCounts{
				period(2024, 2): 1,
			}},
		}

		data := services.BuildGraphData(periods, specs)

		assert.Equal(t, []string{"2024/01", "2024/02", "2024/03"}, data.Labels)
		require.Len(t, data.Series, 2)
		assert.Equal(t, domain.GraphSeries{Name: "commit", Color: "#000000", Values: []int{4, 4, 10}}, data.Series[0])
		assert.Equal(t, domain.GraphSeries{Name: "issue", Color: "#ffffff", Values: []int{0, 1, 1}}, data.Series[1])
	})

	t.Run("series order follows input order", func(t *testing.T) {
		periods := []domain.Period{period(2024, 1)}
		specs := []services.SeriesSpec{
			{Name: "b"}, {Name: "a"}, {Name: "c"},
		}

		data := services.BuildGraphData(periods, specs)

		names := make([]string, len(data.Series))
		for i, s := range data.Series {
			names[i] = s.Name
		}
		assert.Equal(t, []string{"b", "a", "c"}, names)
	})

	t.Run("every series spans every label", func(t *testing.T) {
		periods := []domain.Period{period(2023, 12), period(2024, 1)}
		specs := []services.SeriesSpec{{Name: "sparse", Counts: nil}}

		data := services.BuildGraphData(periods, specs)

		require.Len(t, data.Series, 1)
		assert.Len(t, data.Series[0].Values, len(data.Labels))
	})

	t.Run("empty axis yields an empty but valid graph", func(t *testing.T) {
		data := services.BuildGraphData(nil, []services.SeriesSpec{{Name: "commit"}})

		assert.NotNil(t, data.Labels)
		assert.NotNil(t, data.Series)
		assert.Empty(t, data.Labels)
		assert.Empty(t, data.Series)
	})
}
