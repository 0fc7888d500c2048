package services_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apperrors "github.com/qkitzero/github-contribution-growth-graph/internal/core/errors"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/services"
)

// pagedSource simulates a cursor-paginated remote with fixed pages.
func pagedSource(pages [][]string) services.PageFetcher[string] {
	return func(ctx context.Context, cursor string) (services.Page[string], error) {
		index := 0
		if cursor != "" {
			index, _ = strconv.Atoi(cursor)
		}
		return services.Page[string]{
			Items:      pages[index],
			HasNext:    index < len(pages)-1,
			NextCursor: strconv.Itoa(index + 1),
		}, nil
	}
}

func TestDrainPages(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates all pages in page order", func(t *testing.T) {
		pages := [][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}}

		items, err := services.DrainPages(ctx, pagedSource(pages), nil, 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, items)
	})

	t.Run("single page without next", func(t *testing.T) {
		pages := [][]string{{"only"}}

		items, err := services.DrainPages(ctx, pagedSource(pages), nil, 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, items)
	})

	t.Run("threads cursors between calls", func(t *testing.T) {
		var cursors []string
		fetch := func(ctx context.Context, cursor string) (services.Page[int], error) {
			cursors = append(cursors, cursor)
			return services.Page[int]{
				Items:      []int{len(cursors)},
				HasNext:    len(cursors) < 3,
				NextCursor: "cursor-" + strconv.Itoa(len(cursors)),
			}, nil
		}

		items, err := services.DrainPages(ctx, fetch, nil, 10)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, items)
		assert.Equal(t, []string{"", "cursor-1", "cursor-2"}, cursors)
	})

	t.Run("fetch error aborts the drain", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		fetch := func(ctx context.Context, cursor string) (services.Page[int], error) {
			calls++
			if calls == 2 {
				return services.Page[int]{}, boom
			}
			return services.Page[int]{Items: []int{calls}, HasNext: true, NextCursor: "next"}, nil
		}

		items, err := services.DrainPages(ctx, fetch, nil, 10)

		assert.Nil(t, items)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("never-ending source hits the page cap", func(t *testing.T) {
		fetch := func(ctx context.Context, cursor string) (services.Page[int], error) {
			return services.Page[int]{Items: []int{1}, HasNext: true, NextCursor: "again"}, nil
		}

		items, err := services.DrainPages(ctx, fetch, nil, 5)

		assert.Nil(t, items)
		assert.ErrorIs(t, err, apperrors.ErrTooManyPages)
	})

	t.Run("cancelled context stops between pages", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		fetch := func(ctx context.Context, cursor string) (services.Page[int], error) {
			return services.Page[int]{Items: []int{1}, HasNext: true, NextCursor: "next"}, nil
		}

		// The limiter wait observes the cancelled context on the second page.
		_, err := services.DrainPages(cancelled, fetch, rate.NewLimiter(rate.Inf, 1), 10)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
