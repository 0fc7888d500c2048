package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	apperrors "github.com/qkitzero/github-contribution-growth-graph/internal/core/errors"
)

// Page holds one page of results from a cursor-paginated source.
type Page[T any] struct {
	Items      []T
	HasNext    bool
	NextCursor string
}

// PageFetcher fetches a single page. An empty cursor requests the first
// page.
type PageFetcher[T any] func(ctx context.Context, cursor string) (Page[T], error)

// DrainPages drains a cursor-paginated source into a flat slice. Pages are
// fetched strictly sequentially since each cursor comes from the previous
// page. When a limiter is provided, a token is awaited before every page
// after the first to stay within the remote rate limit.
//
// A source must eventually report HasNext false; maxPages bounds a
// misbehaving source, and exceeding it is an error rather than a silent
// truncation.
func DrainPages[T any](ctx context.Context, fetch PageFetcher[T], limiter *rate.Limiter, maxPages int) ([]T, error) {
	var items []T
	cursor := ""
	for pages := 0; ; pages++ {
		if maxPages > 0 && pages >= maxPages {
			return nil, fmt.Errorf("%w: gave up after %d pages", apperrors.ErrTooManyPages, maxPages)
		}
		if limiter != nil && pages > 0 {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)

		if !page.HasNext {
			return items, nil
		}
		cursor = page.NextCursor
	}
}
