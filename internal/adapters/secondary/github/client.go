package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/qkitzero/github-contribution-growth-graph/internal/config"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	apperrors "github.com/qkitzero/github-contribution-growth-graph/internal/core/errors"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

// languagesPerRepository caps how many languages one repository contributes.
// GitHub orders them by size, so the tail beyond this is noise.
const languagesPerRepository = 10

// Client is the secondary adapter for the GitHub GraphQL v4 API.
type Client struct {
	gql      *githubv4.Client
	pageSize int
	logger   *slog.Logger
}

// Ensure Client implements the ports.GitHubClient interface.
var _ ports.GitHubClient = (*Client)(nil)

// NewClient creates a GitHub client authenticated with the configured token.
func NewClient(cfg config.GitHubConfig, logger *slog.Logger) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := oauth2.NewClient(context.Background(), src)

	var gql *githubv4.Client
	if cfg.Endpoint != "" {
		gql = githubv4.NewEnterpriseClient(cfg.Endpoint, httpClient)
	} else {
		gql = githubv4.NewClient(httpClient)
	}

	return &Client{
		gql:      gql,
		pageSize: cfg.PageSize,
		logger:   logger.With("adapter", "github"),
	}
}

// NewClientWithHTTP creates a client over a caller-supplied HTTP client,
// used by tests to stub the transport.
func NewClientWithHTTP(httpClient *http.Client, pageSize int, logger *slog.Logger) *Client {
	return &Client{
		gql:      githubv4.NewClient(httpClient),
		pageSize: pageSize,
		logger:   logger.With("adapter", "github"),
	}
}

// pageInfo is the shared cursor shape of all paginated connections.
type pageInfo struct {
	EndCursor   githubv4.String
	HasNextPage bool
}

// contributionConnection is the shared shape of the typed contribution
// connections under contributionsCollection.
type contributionConnection struct {
	Nodes []struct {
		OccurredAt githubv4.DateTime
	}
	PageInfo pageInfo
}

// FetchContributionCalendar returns the per-day aggregate counts of the
// contribution calendar for one query window. The window must not span more
// than one year.
func (c *Client) FetchContributionCalendar(ctx context.Context, login string, window domain.DateRange) ([]ports.DailyCount, error) {
	var q struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							ContributionCount int
							Date              string
						}
					}
				}
			} `graphql:"contributionsCollection(from: $from, to: $to)"`
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"from":  githubv4.DateTime{Time: window.From},
		"to":    githubv4.DateTime{Time: window.To},
	}

	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, c.classify(err)
	}

	var days []ports.DailyCount
	for _, week := range q.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := time.ParseInLocation("2006-01-02", day.Date, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: bad calendar date %q", apperrors.ErrUpstream, day.Date)
			}
			days = append(days, ports.DailyCount{Date: date, Count: day.ContributionCount})
		}
	}
	return days, nil
}

// FetchContributionPage returns one cursor page of timestamped events for a
// typed contribution category within one query window.
func (c *Client) FetchContributionPage(ctx context.Context, login string, window domain.DateRange, kind domain.ContributionType, cursor string) (ports.ContributionPage, error) {
	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"from":  githubv4.DateTime{Time: window.From},
		"to":    githubv4.DateTime{Time: window.To},
		"first": githubv4.Int(c.pageSize),
		"after": afterCursor(cursor),
	}

	var conn contributionConnection
	switch kind {
	case domain.TypeIssue:
		var q struct {
			User struct {
				ContributionsCollection struct {
					IssueContributions contributionConnection `graphql:"issueContributions(first: $first, after: $after)"`
				} `graphql:"contributionsCollection(from: $from, to: $to)"`
			} `graphql:"user(login: $login)"`
		}
		if err := c.gql.Query(ctx, &q, variables); err != nil {
			return ports.ContributionPage{}, c.classify(err)
		}
		conn = q.User.ContributionsCollection.IssueContributions

	case domain.TypePullRequest:
		var q struct {
			User struct {
				ContributionsCollection struct {
					PullRequestContributions contributionConnection `graphql:"pullRequestContributions(first: $first, after: $after)"`
				} `graphql:"contributionsCollection(from: $from, to: $to)"`
			} `graphql:"user(login: $login)"`
		}
		if err := c.gql.Query(ctx, &q, variables); err != nil {
			return ports.ContributionPage{}, c.classify(err)
		}
		conn = q.User.ContributionsCollection.PullRequestContributions

	case domain.TypeReview:
		var q struct {
			User struct {
				ContributionsCollection struct {
					PullRequestReviewContributions contributionConnection `graphql:"pullRequestReviewContributions(first: $first, after: $after)"`
				} `graphql:"contributionsCollection(from: $from, to: $to)"`
			} `graphql:"user(login: $login)"`
		}
		if err := c.gql.Query(ctx, &q, variables); err != nil {
			return ports.ContributionPage{}, c.classify(err)
		}
		conn = q.User.ContributionsCollection.PullRequestReviewContributions

	default:
		return ports.ContributionPage{}, fmt.Errorf("%w: no paginated source for %q", apperrors.ErrBadRequest, kind)
	}

	page := ports.ContributionPage{
		OccurredAt: make([]time.Time, 0, len(conn.Nodes)),
		HasNext:    conn.PageInfo.HasNextPage,
		NextCursor: string(conn.PageInfo.EndCursor),
	}
	for _, node := range conn.Nodes {
		page.OccurredAt = append(page.OccurredAt, node.OccurredAt.Time)
	}
	return page, nil
}

// FetchRepositoryPage returns one cursor page of language entries from the
// user's owned, non-fork repositories. Each language is timestamped at the
// repository's creation date.
func (c *Client) FetchRepositoryPage(ctx context.Context, login string, cursor string) (ports.RepositoryPage, error) {
	var q struct {
		User struct {
			Repositories struct {
				Nodes []struct {
					CreatedAt githubv4.DateTime
					Languages struct {
						Edges []struct {
							Size int
							Node struct {
								Name  string
								Color string
							}
						}
					} `graphql:"languages(first: $langs, orderBy: {field: SIZE, direction: DESC})"`
				}
				PageInfo pageInfo
			} `graphql:"repositories(first: $first, after: $after, ownerAffiliations: OWNER, isFork: false)"`
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"first": githubv4.Int(c.pageSize),
		"after": afterCursor(cursor),
		"langs": githubv4.Int(languagesPerRepository),
	}

	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return ports.RepositoryPage{}, c.classify(err)
	}

	repos := q.User.Repositories
	page := ports.RepositoryPage{
		HasNext:    repos.PageInfo.HasNextPage,
		NextCursor: string(repos.PageInfo.EndCursor),
	}
	for _, repo := range repos.Nodes {
		for _, edge := range repo.Languages.Edges {
			page.Languages = append(page.Languages, domain.Language{
				OccurredAt: repo.CreatedAt.Time,
				Name:       edge.Node.Name,
				Color:      edge.Node.Color,
				Size:       edge.Size,
			})
		}
	}
	return page, nil
}

// afterCursor maps an empty cursor to GraphQL null so the first page query
// stays valid.
func afterCursor(cursor string) *githubv4.String {
	if cursor == "" {
		return (*githubv4.String)(nil)
	}
	v := githubv4.String(cursor)
	return &v
}

// classify maps GraphQL errors onto the domain error taxonomy so the HTTP
// layer can pick status codes without inspecting messages.
func (c *Client) classify(err error) error {
	if strings.Contains(err.Error(), "Could not resolve to a User") {
		return fmt.Errorf("%w: %v", apperrors.ErrUserNotFound, err)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
}
