package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

func TestNewPeriod(t *testing.T) {
	t.Run("valid year and month", func(t *testing.T) {
		period, err := domain.NewPeriod(2023, 10)

		require.NoError(t, err)
		assert.Equal(t, 2023, period.Year)
		assert.Equal(t, 10, period.Month)
	})

	t.Run("month below range", func(t *testing.T) {
		_, err := domain.NewPeriod(2023, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})

	t.Run("month above range", func(t *testing.T) {
		_, err := domain.NewPeriod(2023, 13)

		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})
}

func TestPeriodOf(t *testing.T) {
	t.Run("uses the UTC date", func(t *testing.T) {
		// 23:30 on Oct 31 in UTC-5 is already November in UTC.
		loc := time.FixedZone("UTC-5", -5*60*60)
		instant := time.Date(2023, 10, 31, 23, 30, 0, 0, loc)

		period := domain.PeriodOf(instant)

		assert.Equal(t, domain.Period{Year: 2023, Month: 11}, period)
	})
}

func TestPeriodString(t *testing.T) {
	t.Run("formats as YYYY/MM", func(t *testing.T) {
		period := domain.Period{Year: 2023, Month: 10}

		assert.Equal(t, "2023/10", period.String())
	})

	t.Run("pads single digit months", func(t *testing.T) {
		period := domain.Period{Year: 2023, Month: 9}

		assert.Equal(t, "2023/09", period.String())
	})
}

func TestPeriodCompare(t *testing.T) {
	t.Run("orders by year first", func(t *testing.T) {
		earlier := domain.Period{Year: 2022, Month: 12}
		later := domain.Period{Year: 2023, Month: 1}

		assert.True(t, earlier.Before(later))
		assert.False(t, later.Before(earlier))
	})

	t.Run("orders by month within a year", func(t *testing.T) {
		earlier := domain.Period{Year: 2023, Month: 3}
		later := domain.Period{Year: 2023, Month: 4}

		assert.Negative(t, earlier.Compare(later))
		assert.Positive(t, later.Compare(earlier))
	})

	t.Run("equal periods compare as zero", func(t *testing.T) {
		period := domain.Period{Year: 2023, Month: 7}

		assert.Zero(t, period.Compare(period))
	})
}
