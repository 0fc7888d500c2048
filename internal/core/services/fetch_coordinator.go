package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

// maxWindowStep is the largest span the GitHub contributionsCollection
// query accepts.
var maxWindowStep = WindowStep{Years: 1}

// FetchCoordinatorConfig holds fetch tuning knobs.
type FetchCoordinatorConfig struct {
	PageRPS   float64 // pacing between pages of one paginated drain
	PageBurst int
	MaxPages  int // per-drain page cap
}

// DefaultFetchCoordinatorConfig returns a sensible default configuration
func DefaultFetchCoordinatorConfig() FetchCoordinatorConfig {
	return FetchCoordinatorConfig{
		PageRPS:   4,
		PageBurst: 2,
		MaxPages:  50,
	}
}

// FetchCoordinator fans one date range out into per-window, per-category
// fetches against the GitHub client and flattens the results.
type FetchCoordinator struct {
	client   ports.GitHubClient
	limiter  *rate.Limiter
	maxPages int
	logger   *slog.Logger
}

// NewFetchCoordinator creates a new fetch coordinator.
func NewFetchCoordinator(client ports.GitHubClient, cfg FetchCoordinatorConfig, logger *slog.Logger) *FetchCoordinator {
	return &FetchCoordinator{
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(cfg.PageRPS), cfg.PageBurst),
		maxPages: cfg.MaxPages,
		logger:   logger.With("component", "fetch_coordinator"),
	}
}

type fetchTask struct {
	window domain.DateRange
	kind   domain.ContributionType
}

// FetchContributions fetches every requested category across every query
// window of the range. All window/category fetches are launched up front and
// awaited together; the first failure cancels the rest and fails the whole
// call. Result order is unspecified - aggregation re-imposes order later.
func (c *FetchCoordinator) FetchContributions(ctx context.Context, login string, r domain.DateRange, kinds []domain.ContributionType) ([]domain.Contribution, error) {
	windows := PlanWindows(r, maxWindowStep)
	if len(windows) == 0 {
		return nil, nil
	}

	tasks := make([]fetchTask, 0, len(windows)*len(kinds))
	for _, window := range windows {
		for _, kind := range kinds {
			tasks = append(tasks, fetchTask{window: window, kind: kind})
		}
	}

	// Each task writes only its own slot, so no synchronization is needed
	// beyond the group join.
	results := make([][]domain.Contribution, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			contributions, err := c.fetchOne(gctx, login, task)
			if err != nil {
				return err
			}
			results[i] = contributions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var flat []domain.Contribution
	for _, part := range results {
		flat = append(flat, part...)
	}

	c.logger.Debug("contributions fetched",
		"login", login,
		"windows", len(windows),
		"categories", len(kinds),
		"events", len(flat),
	)
	return flat, nil
}

// fetchOne normalizes both source shapes into Contribution values: the
// calendar source is already bucketed per day, event sources are drained
// page by page and carry a count of one per event.
func (c *FetchCoordinator) fetchOne(ctx context.Context, login string, task fetchTask) ([]domain.Contribution, error) {
	if task.kind == domain.TypeCalendar {
		days, err := c.client.FetchContributionCalendar(ctx, login, task.window)
		if err != nil {
			return nil, err
		}
		contributions := make([]domain.Contribution, 0, len(days))
		for _, day := range days {
			contributions = append(contributions, domain.Contribution{
				OccurredAt: day.Date,
				Type:       domain.TypeCalendar,
				Count:      day.Count,
			})
		}
		return contributions, nil
	}

	occurrences, err := DrainPages(ctx, func(ctx context.Context, cursor string) (Page[time.Time], error) {
		page, err := c.client.FetchContributionPage(ctx, login, task.window, task.kind, cursor)
		if err != nil {
			return Page[time.Time]{}, err
		}
		return Page[time.Time]{
			Items:      page.OccurredAt,
			HasNext:    page.HasNext,
			NextCursor: page.NextCursor,
		}, nil
	}, c.limiter, c.maxPages)
	if err != nil {
		return nil, err
	}

	contributions := make([]domain.Contribution, 0, len(occurrences))
	for _, occurredAt := range occurrences {
		contributions = append(contributions, domain.Contribution{
			OccurredAt: occurredAt,
			Type:       task.kind,
			Count:      1,
		})
	}
	return contributions, nil
}

// FetchLanguages drains the user's repositories and keeps the language
// entries whose repository creation falls inside the range. Repositories are
// a single paginated listing, so no windowing is needed.
func (c *FetchCoordinator) FetchLanguages(ctx context.Context, login string, r domain.DateRange) ([]domain.Language, error) {
	if r.IsEmpty() {
		return nil, nil
	}

	all, err := DrainPages(ctx, func(ctx context.Context, cursor string) (Page[domain.Language], error) {
		page, err := c.client.FetchRepositoryPage(ctx, login, cursor)
		if err != nil {
			return Page[domain.Language]{}, err
		}
		return Page[domain.Language]{
			Items:      page.Languages,
			HasNext:    page.HasNext,
			NextCursor: page.NextCursor,
		}, nil
	}, c.limiter, c.maxPages)
	if err != nil {
		return nil, err
	}

	var inRange []domain.Language
	for _, lang := range all {
		if !lang.OccurredAt.Before(r.From) && lang.OccurredAt.Before(r.To) {
			inRange = append(inRange, lang)
		}
	}
	return inRange, nil
}
