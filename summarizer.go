package draft

import "context"

// Summarizer distills scraped page content into a structured reference.
type Summarizer interface {
	// Summarize analyzes content from url in the context of the user's
	// query and returns a reference with highlights, assumptions,
	// components, and a relevance confidence score.
	Summarize(ctx context.Context, title, url, content, query string) (*Reference, error)
}
