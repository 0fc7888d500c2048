package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/mocks"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/services"
)

func newGraphService(client ports.GitHubClient, renderer ports.Renderer, now time.Time) *services.GraphService {
	coordinator := services.NewFetchCoordinator(client, services.DefaultFetchCoordinatorConfig(), discardLogger())
	return services.NewGraphService(coordinator, renderer, mocks.FixedClock{Instant: now}, discardLogger())
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// stubAllCategories wires one calendar response and empty event pages for
// every typed category over the given window.
func stubAllCategories(client *mocks.MockGitHubClient, window domain.DateRange, days []ports.DailyCount, issues []time.Time) {
	client.On("FetchContributionCalendar", mock.Anything, "octocat", window).Return(days, nil)
	client.On("FetchContributionPage", mock.Anything, "octocat", window, domain.TypeIssue, "").
		Return(ports.ContributionPage{OccurredAt: issues}, nil)
	client.On("FetchContributionPage", mock.Anything, "octocat", window, domain.TypePullRequest, "").
		Return(ports.ContributionPage{}, nil)
	client.On("FetchContributionPage", mock.Anything, "octocat", window, domain.TypeReview, "").
		Return(ports.ContributionPage{}, nil)
}

func TestContributionsGraph(t *testing.T) {
	ctx := context.Background()
	now := date(2025, 6, 15)

	t.Run("builds cumulative series from reconciled activity", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 3, 1)}

		stubAllCategories(client, window,
			[]ports.DailyCount{
				{Date: date(2024, 1, 1), Count: 5},
				{Date: date(2024, 1, 15), Count: 10},
			},
			[]time.Time{date(2024, 1, 1), date(2024, 1, 1)},
		)

		var rendered domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(domain.GraphData) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		image, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
		})

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), image)

		assert.Equal(t, []string{"2024/01"}, rendered.Labels)
		require.Len(t, rendered.Series, 2)
		// 15 calendar contributions minus 2 issues leaves 13 commits.
		assert.Equal(t, domain.GraphSeries{Name: "Commits", Color: "#2da44e", Values: []int{13}}, rendered.Series[0])
		assert.Equal(t, domain.GraphSeries{Name: "Issues", Color: "#cf222e", Values: []int{2}}, rendered.Series[1])
		client.AssertExpectations(t)
	})

	t.Run("same inputs render identical graph data", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 3, 1)}

		stubAllCategories(client, window,
			[]ports.DailyCount{{Date: date(2024, 1, 1), Count: 5}},
			[]time.Time{date(2024, 2, 3)},
		)

		var captured []domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = append(captured, args.Get(1).(domain.GraphData)) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		params := ports.GraphParams{Login: "octocat", From: timePtr(window.From), To: timePtr(window.To)}

		_, err := service.ContributionsGraph(ctx, params)
		require.NoError(t, err)
		_, err = service.ContributionsGraph(ctx, params)
		require.NoError(t, err)

		require.Len(t, captured, 2)
		assert.Equal(t, captured[0], captured[1])
	})

	t.Run("defaults to the trailing year ending now", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 6, 15), To: date(2025, 6, 15)}

		stubAllCategories(client, window, nil, nil)
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		_, err := service.ContributionsGraph(ctx, ports.GraphParams{Login: "octocat"})

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("type filter narrows the rendered series", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 3, 1)}

		// Only issues are requested, so neither the calendar nor the other
		// event categories are fetched.
		client.On("FetchContributionPage", mock.Anything, "octocat", window, domain.TypeIssue, "").
			Return(ports.ContributionPage{OccurredAt: []time.Time{date(2024, 1, 2)}}, nil)

		var rendered domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(domain.GraphData) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		_, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
			Types: []string{"issue"},
		})

		require.NoError(t, err)
		require.Len(t, rendered.Series, 1)
		assert.Equal(t, "Issues", rendered.Series[0].Name)
		client.AssertNotCalled(t, "FetchContributionCalendar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("filtered commits still fetch every category", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 3, 1)}

		stubAllCategories(client, window,
			[]ports.DailyCount{{Date: date(2024, 1, 1), Count: 4}},
			[]time.Time{date(2024, 1, 1)},
		)

		var rendered domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(domain.GraphData) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		_, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
			Types: []string{"commit"},
		})

		require.NoError(t, err)
		// The issue count is needed for the subtraction but not displayed.
		require.Len(t, rendered.Series, 1)
		assert.Equal(t, domain.GraphSeries{Name: "Commits", Color: "#2da44e", Values: []int{3}}, rendered.Series[0])
		client.AssertExpectations(t)
	})

	t.Run("applies theme and size to the render options", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 2, 1)}

		stubAllCategories(client, window, []ports.DailyCount{{Date: date(2024, 1, 1), Count: 1}}, nil)

		var opts ports.RenderOptions
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { opts = args.Get(2).(ports.RenderOptions) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		_, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
			Theme: "dark",
			Size:  "large",
		})

		require.NoError(t, err)
		assert.Equal(t, ports.RenderOptions{
			Width:      1000,
			Height:     500,
			Background: "#000000",
			Title:      "GitHub Contribution Growth",
		}, opts)
	})

	t.Run("fetch failure surfaces without rendering", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 2, 1)}

		client.On("FetchContributionCalendar", mock.Anything, "octocat", window).
			Return(nil, assert.AnError)
		client.On("FetchContributionPage", mock.Anything, "octocat", window, mock.Anything, "").
			Return(ports.ContributionPage{}, nil).Maybe()

		service := newGraphService(client, renderer, now)
		image, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
		})

		assert.Nil(t, image)
		assert.ErrorIs(t, err, assert.AnError)
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no activity still renders an empty graph", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 2, 1)}

		stubAllCategories(client, window, nil, nil)

		var rendered domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(domain.GraphData) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		image, err := service.ContributionsGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
		})

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), image)
		assert.Empty(t, rendered.Labels)
		assert.Empty(t, rendered.Series)
	})
}

func TestLanguagesGraph(t *testing.T) {
	ctx := context.Background()
	now := date(2025, 6, 15)

	t.Run("orders languages by total size", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()
		window := domain.DateRange{From: date(2024, 1, 1), To: date(2024, 6, 1)}

		client.On("FetchRepositoryPage", mock.Anything, "octocat", "").
			Return(ports.RepositoryPage{
				Languages: []domain.Language{
					{OccurredAt: date(2024, 1, 10), Name: "Ruby", Color: "#701516", Size: 30},
					{OccurredAt: date(2024, 2, 5), Name: "Go", Color: "#00ADD8", Size: 100},
					{OccurredAt: date(2024, 3, 1), Name: "Makefile", Color: "", Size: 5},
				},
			}, nil)

		var rendered domain.GraphData
		renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { rendered = args.Get(1).(domain.GraphData) }).
			Return([]byte("png"), nil)

		service := newGraphService(client, renderer, now)
		image, err := service.LanguagesGraph(ctx, ports.GraphParams{
			Login: "octocat",
			From:  timePtr(window.From),
			To:    timePtr(window.To),
		})

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), image)

		assert.Equal(t, []string{"2024/01", "2024/02", "2024/03"}, rendered.Labels)
		require.Len(t, rendered.Series, 3)
		assert.Equal(t, domain.GraphSeries{Name: "Go", Color: "#00ADD8", Values: []int{0, 100, 100}}, rendered.Series[0])
		assert.Equal(t, domain.GraphSeries{Name: "Ruby", Color: "#701516", Values: []int{30, 30, 30}}, rendered.Series[1])
		// GitHub reports no color for Makefile; the neutral fallback applies.
		assert.Equal(t, domain.GraphSeries{Name: "Makefile", Color: domain.DefaultSeriesColor, Values: []int{0, 0, 5}}, rendered.Series[2])
	})

	t.Run("listing failure surfaces without rendering", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		renderer := mocks.NewMockRenderer()

		client.On("FetchRepositoryPage", mock.Anything, "octocat", "").
			Return(ports.RepositoryPage{}, assert.AnError)

		service := newGraphService(client, renderer, now)
		image, err := service.LanguagesGraph(ctx, ports.GraphParams{Login: "octocat"})

		assert.Nil(t, image)
		assert.ErrorIs(t, err, assert.AnError)
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	})
}
