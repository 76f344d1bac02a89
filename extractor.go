package draft

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// PageMetadata holds fallback metadata parsed from a page's head.
type PageMetadata struct {
	Title       string
	Description string
}

// MetadataParser parses title and description from raw HTML, used as a
// fallback when content extraction yields no title.
type MetadataParser interface {
	ParseMetadata(html string) (*PageMetadata, error)
}
