package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonth is returned when a period is constructed with a month
// outside [1,12].
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Period is a calendar bucket used as the reporting granularity of a graph.
// The default policy buckets by year and month.
type Period struct {
	Year  int
	Month int
}

// NewPeriod creates a period, rejecting months outside [1,12].
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return Period{Year: year, Month: month}, nil
}

// PeriodOf returns the period containing the given instant, in UTC.
func PeriodOf(t time.Time) Period {
	u := t.UTC()
	return Period{Year: u.Year(), Month: int(u.Month())}
}

// String formats the period as YYYY/MM with a zero-padded month.
func (p Period) String() string {
	return fmt.Sprintf("%04d/%02d", p.Year, p.Month)
}

// Compare orders periods by year, then month.
func (p Period) Compare(other Period) int {
	if p.Year != other.Year {
		return p.Year - other.Year
	}
	return p.Month - other.Month
}

// Before reports whether p precedes other.
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}
