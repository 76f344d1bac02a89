// Package retrieve orchestrates reference retrieval: provider selection,
// page scraping, summarization, and the durable cache around it all.
package retrieve

import (
	"context"
	"log/slog"

	"draft"
)

// Ensure Registry implements draft.Searcher at compile time.
var _ draft.Searcher = (*Registry)(nil)

// Registry selects among search providers, first-available-wins.
// A provider that reports itself unavailable, or fails with EUNAVAILABLE
// at call time, is skipped in favor of the next one.
type Registry struct {
	searchers []draft.Searcher
	logger    *slog.Logger
}

// NewRegistry creates a Registry over the given providers in priority
// order. A nil logger falls back to slog.Default().
func NewRegistry(logger *slog.Logger, searchers ...draft.Searcher) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{searchers: searchers, logger: logger}
}

// Search delegates to the first provider that can serve the query.
// Returns EUNAVAILABLE when no provider is left to try.
func (r *Registry) Search(ctx context.Context, query string, limit int) ([]draft.Reference, error) {
	for _, s := range r.searchers {
		if !s.Available() {
			continue
		}

		refs, err := s.Search(ctx, query, limit)
		if err != nil {
			if draft.ErrorCode(err) == draft.EUNAVAILABLE {
				r.logger.Warn("search provider unavailable, trying next",
					"provider", s.Name(),
					"error", draft.ErrorMessage(err),
				)
				continue
			}
			return nil, err
		}

		r.logger.Info("search completed", "provider", s.Name(), "results", len(refs))
		return refs, nil
	}

	return nil, draft.Errorf(draft.EUNAVAILABLE, "no search provider available")
}

// Available reports whether any provider is configured.
func (r *Registry) Available() bool {
	for _, s := range r.searchers {
		if s.Available() {
			return true
		}
	}
	return false
}

// Name identifies the active provider, or "none" when unconfigured.
func (r *Registry) Name() string {
	for _, s := range r.searchers {
		if s.Available() {
			return s.Name()
		}
	}
	return "none"
}
