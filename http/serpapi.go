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

// DefaultSerpAPIURL is the SerpAPI search endpoint.
const DefaultSerpAPIURL = "https://serpapi.com/search"

// Ensure SerpAPISearcher implements draft.Searcher at compile time.
var _ draft.Searcher = (*SerpAPISearcher)(nil)

// SerpAPISearcher implements draft.Searcher using the SerpAPI Google
// Search endpoint.
type SerpAPISearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// SerpAPIOption configures a SerpAPISearcher.
type SerpAPIOption func(*SerpAPISearcher)

// WithSerpAPIURL overrides the API endpoint, primarily for tests.
func WithSerpAPIURL(u string) SerpAPIOption {
	return func(s *SerpAPISearcher) {
		s.baseURL = u
	}
}

// NewSerpAPISearcher creates a SerpAPISearcher with the given API key.
// An empty key leaves the provider unavailable rather than failing.
func NewSerpAPISearcher(apiKey string, opts ...SerpAPIOption) *SerpAPISearcher {
	s := &SerpAPISearcher{
		apiKey:  apiKey,
		baseURL: DefaultSerpAPIURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether an API key is configured.
func (s *SerpAPISearcher) Available() bool {
	return s.apiKey != ""
}

// Name identifies the provider for logging.
func (s *SerpAPISearcher) Name() string {
	return "serpapi"
}

// serpAPIResponse is the subset of the SerpAPI payload we consume.
type serpAPIResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// Search returns up to limit organic results for the query.
func (s *SerpAPISearcher) Search(ctx context.Context, query string, limit int) ([]draft.Reference, error) {
	if !s.Available() {
		return nil, draft.Errorf(draft.EUNAVAILABLE, "serpapi key not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", s.apiKey)
	params.Set("engine", "google")
	params.Set("num", strconv.Itoa(limit))
	params.Set("gl", "us")
	params.Set("hl", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, draft.Errorf(draft.EUNAVAILABLE, "serpapi unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload serpAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("serpapi: failed to decode response: %w", err)
	}

	refs := make([]draft.Reference, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		if len(refs) == limit {
			break
		}
		refs = append(refs, draft.Reference{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
		})
	}
	return refs, nil
}
