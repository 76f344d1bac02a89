package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"draft"
)

// DefaultBingURL is the Bing Web Search endpoint.
const DefaultBingURL = "https://api.bing.microsoft.com/v7.0/search"

// Ensure BingSearcher implements draft.Searcher at compile time.
var _ draft.Searcher = (*BingSearcher)(nil)

// BingSearcher implements draft.Searcher using the Bing Web Search API.
type BingSearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// BingOption configures a BingSearcher.
type BingOption func(*BingSearcher)

// WithBingURL overrides the API endpoint, primarily for tests.
func WithBingURL(u string) BingOption {
	return func(s *BingSearcher) {
		s.baseURL = u
	}
}

// NewBingSearcher creates a BingSearcher with the given API key.
// An empty key leaves the provider unavailable rather than failing.
func NewBingSearcher(apiKey string, opts ...BingOption) *BingSearcher {
	s := &BingSearcher{
		apiKey:  apiKey,
		baseURL: DefaultBingURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether an API key is configured.
func (s *BingSearcher) Available() bool {
	return s.apiKey != ""
}

// Name identifies the provider for logging.
func (s *BingSearcher) Name() string {
	return "bing"
}

// bingResponse is the subset of the Bing payload we consume.
type bingResponse struct {
	WebPages struct {
		Value []struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
		} `json:"value"`
	} `json:"webPages"`
}

// Search returns up to limit web results for the query.
func (s *BingSearcher) Search(ctx context.Context, query string, limit int) ([]draft.Reference, error) {
	if !s.Available() {
		return nil, draft.Errorf(draft.EUNAVAILABLE, "bing key not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(limit))
	params.Set("mkt", "en-US")
	params.Set("safeSearch", "Moderate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, draft.Errorf(draft.EUNAVAILABLE, "bing unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bing: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload bingResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("bing: failed to decode response: %w", err)
	}

	refs := make([]draft.Reference, 0, len(payload.WebPages.Value))
	for _, r := range payload.WebPages.Value {
		if len(refs) == limit {
			break
		}
		refs = append(refs, draft.Reference{
			Title:   r.Name,
			URL:     r.URL,
			Snippet: r.Snippet,
		})
	}
	return refs, nil
}
