package mock

import (
	"context"

	"draft"
)

var _ draft.ReferenceCache = (*ReferenceCache)(nil)

// ReferenceCache is a mock implementation of draft.ReferenceCache.
type ReferenceCache struct {
	GetReferencesFn func(ctx context.Context, query string) ([]draft.Reference, error)
	SetReferencesFn func(ctx context.Context, query string, refs []draft.Reference) error
}

func (c *ReferenceCache) GetReferences(ctx context.Context, query string) ([]draft.Reference, error) {
	return c.GetReferencesFn(ctx, query)
}

func (c *ReferenceCache) SetReferences(ctx context.Context, query string, refs []draft.Reference) error {
	return c.SetReferencesFn(ctx, query, refs)
}

var _ draft.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of draft.Searcher.
type Searcher struct {
	SearchFn    func(ctx context.Context, query string, limit int) ([]draft.Reference, error)
	AvailableFn func() bool
	NameFn      func() string
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]draft.Reference, error) {
	return s.SearchFn(ctx, query, limit)
}

func (s *Searcher) Available() bool {
	if s.AvailableFn == nil {
		return true
	}
	return s.AvailableFn()
}

func (s *Searcher) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

var _ draft.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of draft.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title, url, content, query string) (*draft.Reference, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title, url, content, query string) (*draft.Reference, error) {
	return s.SummarizeFn(ctx, title, url, content, query)
}
