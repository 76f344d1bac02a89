// Package goquery provides HTML metadata parsing used as a fallback when
// content extraction yields no title.
package goquery

import (
	"strings"

	"draft"

	"github.com/PuerkitoBio/goquery"
)

// Ensure Parser implements draft.MetadataParser at compile time.
var _ draft.MetadataParser = (*Parser)(nil)

// Parser reads title and description from a page's head.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseMetadata extracts the page title and meta description.
// The og: properties win over the plain tags when both are present.
func (p *Parser) ParseMetadata(html string) (*draft.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, draft.Errorf(draft.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &draft.PageMetadata{}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		meta.Title = strings.TrimSpace(v)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(v)
	}
	if meta.Description == "" {
		if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(v)
		}
	}

	return meta, nil
}
