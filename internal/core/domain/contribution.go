package domain

import (
	"time"
)

// ContributionType identifies one kind of tracked GitHub activity.
type ContributionType string

const (
	// TypeCalendar is the per-day aggregate count from the contribution
	// calendar. It is a superset of the typed counts and never appears in
	// reconciled output.
	TypeCalendar ContributionType = "calendar"

	TypeCommit      ContributionType = "commit"
	TypeIssue       ContributionType = "issue"
	TypePullRequest ContributionType = "pull_request"
	TypeReview      ContributionType = "pull_request_review"
)

// ContributionTypeOrder is the declared stacking order for contribution
// series. Types not listed here are never rendered.
var ContributionTypeOrder = []ContributionType{
	TypeCommit,
	TypeIssue,
	TypePullRequest,
	TypeReview,
}

// displayNames maps contribution types to series legend labels.
var displayNames = map[ContributionType]string{
	TypeCommit:      "Commits",
	TypeIssue:       "Issues",
	TypePullRequest: "Pull Requests",
	TypeReview:      "Reviews",
}

// DisplayName returns the legend label for the type.
func (t ContributionType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// ParseContributionType maps a query-string token to a known type.
func ParseContributionType(s string) (ContributionType, bool) {
	switch ContributionType(s) {
	case TypeCommit, TypeIssue, TypePullRequest, TypeReview:
		return ContributionType(s), true
	}
	return "", false
}

// Contribution is a single raw activity event. Event-style sources produce
// one per discrete activity with Count 1; the calendar source produces one
// per day carrying that day's aggregate count.
type Contribution struct {
	OccurredAt time.Time
	Type       ContributionType
	Count      int
}

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsEmpty reports whether the range covers no time at all.
func (r DateRange) IsEmpty() bool {
	return !r.From.Before(r.To)
}
