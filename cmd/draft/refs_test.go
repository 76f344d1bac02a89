package main_test

import (
	"context"
	"testing"

	"draft"
	main "draft/cmd/draft"
	"draft/mock"
	"draft/retrieve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints formatted references", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		deps.Pipeline = &retrieve.Pipeline{
			Searcher: &mock.Searcher{
				SearchFn: func(_ context.Context, query string, limit int) ([]draft.Reference, error) {
					assert.Equal(t, "event sourcing", query)
					assert.Equal(t, 3, limit)
					return []draft.Reference{
						{Title: "Event Sourcing", URL: "https://example.com/es", Snippet: "append-only log"},
					}, nil
				},
			},
		}

		cmd := &main.RefsCmd{Query: "event sourcing", Limit: 3}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "## Reference: Event Sourcing")
		assert.Contains(t, output, "https://example.com/es")
		assert.Contains(t, output, "append-only log")
	})

	t.Run("reports empty results", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newTestDeps()
		deps.Pipeline = &retrieve.Pipeline{
			Searcher: &mock.Searcher{
				SearchFn: func(_ context.Context, _ string, _ int) ([]draft.Reference, error) {
					return nil, nil
				},
			},
		}

		cmd := &main.RefsCmd{Query: "nothing", Limit: 5}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No references found")
	})

	t.Run("surfaces provider unavailability", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps()
		deps.Pipeline = &retrieve.Pipeline{
			Searcher: &mock.Searcher{
				SearchFn: func(_ context.Context, _ string, _ int) ([]draft.Reference, error) {
					return nil, draft.Errorf(draft.EUNAVAILABLE, "no search provider available")
				},
			},
		}

		cmd := &main.RefsCmd{Query: "anything", Limit: 5}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, draft.EUNAVAILABLE, draft.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no search provider available")
	})
}
