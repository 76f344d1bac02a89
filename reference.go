package draft

import "context"

// Reference is a summarized pointer to external design material.
// Search providers populate Title, URL, and Snippet; the summarization
// step fills in the rest.
type Reference struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Snippet     string   `json:"snippet,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`
	Components  []string `json:"components,omitempty"`
	Confidence  float64  `json:"confidenceScore,omitempty"`
}

// ReferenceCache is a durable cache of retrieved references keyed by
// query text. Keys are derived from the raw query bytes: case and
// whitespace variants are distinct entries.
type ReferenceCache interface {
	// GetReferences returns the cached references for a query in stored
	// order. Returns ENOTFOUND on a miss. Entries past their expiry are
	// deleted on read and reported as a miss, never returned stale.
	GetReferences(ctx context.Context, query string) ([]Reference, error)

	// SetReferences replaces the cached entry for a query wholesale and
	// restarts its time-to-live. The caller's ordering is preserved
	// verbatim; the cache performs no deduplication or re-ranking.
	SetReferences(ctx context.Context, query string, refs []Reference) error
}

// Searcher provides web search for design references.
type Searcher interface {
	// Search returns up to limit results for the query, ordered by the
	// provider. Returns EUNAVAILABLE if the provider is not configured
	// or not reachable.
	Search(ctx context.Context, query string, limit int) ([]Reference, error)

	// Available reports whether the provider is configured.
	Available() bool

	// Name identifies the provider for logging.
	Name() string
}

// DomainLimiter rate limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
