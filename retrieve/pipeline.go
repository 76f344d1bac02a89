package retrieve

import (
	"context"
	"log/slog"
	"net/url"

	"draft"
	"draft/bloom"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many references are scraped at once.
const DefaultConcurrency = 4

// Pipeline retrieves, scrapes, and summarizes references for a query,
// backed by the durable cache. Search results keep their provider order;
// enrichment runs concurrently but writes each result back to its slot.
//
// Cache failures degrade to a miss on read and a logged no-op on write;
// persistence problems never fail a retrieval. Scrape or summarization
// failures for one page leave that reference with just the provider's
// title, URL, and snippet.
type Pipeline struct {
	Searcher   draft.Searcher
	Fetcher    draft.Fetcher
	Extractor  draft.Extractor
	Converter  draft.Converter
	Metadata   draft.MetadataParser
	Summarizer draft.Summarizer
	Cache      draft.ReferenceCache
	Limiter    draft.DomainLimiter

	// Seen skips pages already scraped by this process across queries.
	Seen *bloom.Filter

	Logger      *slog.Logger
	Concurrency int
}

// Retrieve returns references for the query, from cache when possible.
func (p *Pipeline) Retrieve(ctx context.Context, query string, limit int) ([]draft.Reference, error) {
	logger := p.logger()

	if p.Cache != nil {
		refs, err := p.Cache.GetReferences(ctx, query)
		if err == nil {
			logger.Info("reference cache hit", "results", len(refs))
			return refs, nil
		}
		if draft.ErrorCode(err) != draft.ENOTFOUND {
			// Fail open: a broken cache reads as a miss.
			logger.Warn("reference cache read failed", "error", err)
		}
	}

	results, err := p.Searcher.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	refs := make([]draft.Reference, len(results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, result := range results {
		g.Go(func() error {
			refs[i] = p.enrich(gctx, result, query)
			return nil
		})
	}
	// Workers never return errors; Wait only propagates ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.Cache != nil {
		if err := p.Cache.SetReferences(ctx, query, refs); err != nil {
			logger.Warn("reference cache write failed", "error", err)
		}
	}

	return refs, nil
}

// enrich scrapes and summarizes one search result. Any failure falls back
// to the bare search result.
func (p *Pipeline) enrich(ctx context.Context, result draft.Reference, query string) draft.Reference {
	logger := p.logger().With("url", result.URL)

	if p.Fetcher == nil || result.URL == "" {
		return result
	}
	if p.Seen != nil && p.Seen.Test(result.URL) {
		logger.Debug("skipping already scraped URL")
		return result
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, domainOf(result.URL)); err != nil {
			return result
		}
	}

	html, err := p.Fetcher.Fetch(ctx, result.URL)
	if err != nil {
		logger.Warn("failed to fetch reference page", "error", err)
		return result
	}
	if p.Seen != nil {
		p.Seen.Add(result.URL)
	}

	title, content := p.extract(html, result)
	if content == "" || p.Summarizer == nil {
		return result
	}

	summary, err := p.Summarizer.Summarize(ctx, title, result.URL, content, query)
	if err != nil {
		logger.Warn("failed to summarize reference", "error", err)
		return result
	}

	// Keep the provider's snippet alongside the summary.
	summary.Snippet = result.Snippet
	if summary.Title == "" {
		summary.Title = title
	}
	if summary.URL == "" {
		summary.URL = result.URL
	}
	return *summary
}

// extract pulls the page's main content as markdown, with a metadata
// fallback for the title.
func (p *Pipeline) extract(html string, result draft.Reference) (title, content string) {
	title = result.Title

	if p.Extractor != nil {
		if extracted, err := p.Extractor.Extract(html); err == nil {
			if extracted.Title != "" {
				title = extracted.Title
			}
			if p.Converter != nil && extracted.ContentHTML != "" {
				if md, err := p.Converter.Convert(extracted.ContentHTML); err == nil {
					content = md
				}
			}
		}
	}

	if title == "" && p.Metadata != nil {
		if meta, err := p.Metadata.ParseMetadata(html); err == nil {
			title = meta.Title
		}
	}

	return title, content
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency > 0 {
		return p.Concurrency
	}
	return DefaultConcurrency
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// domainOf returns the host of a URL, or the URL itself if unparseable.
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
