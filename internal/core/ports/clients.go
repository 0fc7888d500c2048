package ports

import (
	"context"
	"time"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
)

// DailyCount is one day's aggregate contribution count from the calendar
// source.
type DailyCount struct {
	Date  time.Time
	Count int
}

// ContributionPage is one page of timestamped contribution events for a
// single typed category.
type ContributionPage struct {
	OccurredAt []time.Time
	HasNext    bool
	NextCursor string
}

// RepositoryPage is one page of language entries taken from a user's
// repositories.
type RepositoryPage struct {
	Languages  []domain.Language
	HasNext    bool
	NextCursor string
}

// GitHubClient defines the port for the GitHub GraphQL API.
//
// FetchContributionCalendar is the calendar-style source: it returns
// already-bucketed per-day counts for the window. FetchContributionPage is
// the event-style source: it returns raw event timestamps one cursor page at
// a time. The window passed to either must not exceed one year, the API's
// per-query span limit.
type GitHubClient interface {
	FetchContributionCalendar(ctx context.Context, login string, window domain.DateRange) ([]DailyCount, error)
	FetchContributionPage(ctx context.Context, login string, window domain.DateRange, kind domain.ContributionType, cursor string) (ContributionPage, error)
	FetchRepositoryPage(ctx context.Context, login string, cursor string) (RepositoryPage, error)
}

// RenderOptions carries the non-data configuration for a render call.
type RenderOptions struct {
	Width      int
	Height     int
	Background string
	Title      string
}

// Renderer defines the port for turning graph data into an image.
type Renderer interface {
	Render(ctx context.Context, data domain.GraphData, opts RenderOptions) ([]byte, error)
}

// Clock defines the port for the current time, injected so the default
// date-range resolution stays deterministic under test.
type Clock interface {
	Now() time.Time
}
