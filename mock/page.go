package mock

import (
	"context"

	"draft"
)

var _ draft.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of draft.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ draft.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of draft.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*draft.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*draft.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ draft.Converter = (*Converter)(nil)

// Converter is a mock implementation of draft.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ draft.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of draft.MetadataParser.
type MetadataParser struct {
	ParseMetadataFn func(html string) (*draft.PageMetadata, error)
}

func (p *MetadataParser) ParseMetadata(html string) (*draft.PageMetadata, error) {
	return p.ParseMetadataFn(html)
}

var _ draft.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of draft.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
