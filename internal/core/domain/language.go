package domain

import "time"

// Language is one language's byte share of a repository, timestamped at the
// repository's creation so it lands in a calendar period.
type Language struct {
	OccurredAt time.Time
	Name       string
	Color      string
	Size       int
}
