package services

import (
	"context"
	"log/slog"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

const (
	contributionsGraphTitle = "GitHub Contribution Growth"
	languagesGraphTitle     = "GitHub Language Growth"
)

// GraphService implements the use case of turning a user's GitHub history
// into a rendered cumulative graph.
type GraphService struct {
	coordinator *FetchCoordinator
	renderer    ports.Renderer
	clock       ports.Clock
	logger      *slog.Logger
}

var _ ports.GraphService = (*GraphService)(nil)

// NewGraphService creates a new graph service.
func NewGraphService(coordinator *FetchCoordinator, renderer ports.Renderer, clock ports.Clock, logger *slog.Logger) *GraphService {
	return &GraphService{
		coordinator: coordinator,
		renderer:    renderer,
		clock:       clock,
		logger:      logger.With("service", "graph"),
	}
}

// ContributionsGraph renders the cumulative contribution graph for a user.
func (s *GraphService) ContributionsGraph(ctx context.Context, params ports.GraphParams) ([]byte, error) {
	r := s.resolveRange(params)
	requested := resolveTypes(params.Types)

	events, err := s.coordinator.FetchContributions(ctx, params.Login, r, fetchKinds(requested))
	if err != nil {
		return nil, err
	}

	daily := Reconcile(events)
	agg := AggregateContributions(daily)
	periods := agg.Periods()

	theme := domain.NewTheme(params.Theme)
	specs := make([]SeriesSpec, 0, len(requested))
	for _, kind := range agg.OrderByPriority(requested) {
		specs = append(specs, SeriesSpec{
			Name:   kind.DisplayName(),
			Color:  theme.ColorForType(kind),
			Counts: agg.Counts(kind),
		})
	}

	data := BuildGraphData(periods, specs)
	return s.render(ctx, data, theme, params.Size, contributionsGraphTitle)
}

// LanguagesGraph renders the cumulative language size graph for a user.
func (s *GraphService) LanguagesGraph(ctx context.Context, params ports.GraphParams) ([]byte, error) {
	r := s.resolveRange(params)

	languages, err := s.coordinator.FetchLanguages(ctx, params.Login, r)
	if err != nil {
		return nil, err
	}

	agg, colors := AggregateLanguages(languages)
	periods := agg.Periods()

	ordered := agg.OrderByTotal()
	specs := make([]SeriesSpec, 0, len(ordered))
	for _, name := range ordered {
		color := colors[name]
		if color == "" {
			color = domain.DefaultSeriesColor
		}
		specs = append(specs, SeriesSpec{
			Name:   name,
			Color:  color,
			Counts: agg.Counts(name),
		})
	}

	theme := domain.NewTheme(params.Theme)
	data := BuildGraphData(periods, specs)
	return s.render(ctx, data, theme, params.Size, languagesGraphTitle)
}

func (s *GraphService) render(ctx context.Context, data domain.GraphData, theme domain.Theme, sizeName, title string) ([]byte, error) {
	size := domain.NewSize(sizeName)
	return s.renderer.Render(ctx, data, ports.RenderOptions{
		Width:      size.Width,
		Height:     size.Height,
		Background: theme.Background,
		Title:      title,
	})
}

// resolveRange fills in the default trailing year. An inverted range is
// left as-is: the planner treats it as empty and the pipeline degrades to an
// empty graph instead of erroring.
func (s *GraphService) resolveRange(params ports.GraphParams) domain.DateRange {
	to := s.clock.Now().UTC()
	if params.To != nil {
		to = params.To.UTC()
	}
	from := to.AddDate(-1, 0, 0)
	if params.From != nil {
		from = params.From.UTC()
	}
	return domain.DateRange{From: from, To: to}
}

// resolveTypes applies the allow-list filter to the declared stacking
// order. Unknown tokens are ignored; an empty filter means every type.
func resolveTypes(filter []string) []domain.ContributionType {
	if len(filter) == 0 {
		return ContributionTypeOrderCopy()
	}

	allowed := make(map[domain.ContributionType]bool, len(filter))
	for _, token := range filter {
		if kind, ok := domain.ParseContributionType(token); ok {
			allowed[kind] = true
		}
	}

	var out []domain.ContributionType
	for _, kind := range domain.ContributionTypeOrder {
		if allowed[kind] {
			out = append(out, kind)
		}
	}
	return out
}

// ContributionTypeOrderCopy returns a mutable copy of the declared order.
func ContributionTypeOrderCopy() []domain.ContributionType {
	out := make([]domain.ContributionType, len(domain.ContributionTypeOrder))
	copy(out, domain.ContributionTypeOrder)
	return out
}

// fetchKinds expands the displayed types into the categories that must be
// fetched. Commits are not directly observable; deriving them needs the
// calendar aggregate and every other typed count for the subtraction, even
// when those types are filtered out of the display.
func fetchKinds(requested []domain.ContributionType) []domain.ContributionType {
	wantCommit := false
	for _, kind := range requested {
		if kind == domain.TypeCommit {
			wantCommit = true
		}
	}
	if wantCommit {
		return []domain.ContributionType{
			domain.TypeCalendar,
			domain.TypeIssue,
			domain.TypePullRequest,
			domain.TypeReview,
		}
	}

	out := make([]domain.ContributionType, 0, len(requested))
	out = append(out, requested...)
	return out
}
