package goquery_test

import (
	"testing"

	"draft"
	"draft/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements draft.MetadataParser at compile time.
var _ draft.MetadataParser = (*goquery.Parser)(nil)

func TestParser_ParseMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title and meta description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>Designing a URL Shortener</title>
			<meta name="description" content="Hashing, key generation, and redirects.">
		</head><body></body></html>`

		p := goquery.NewParser()
		meta, err := p.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Designing a URL Shortener", meta.Title)
		assert.Equal(t, "Hashing, key generation, and redirects.", meta.Description)
	})

	t.Run("prefers og properties over plain tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title>Plain Title</title>
			<meta property="og:title" content="OG Title">
			<meta name="description" content="plain desc">
			<meta property="og:description" content="og desc">
		</head><body></body></html>`

		p := goquery.NewParser()
		meta, err := p.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "OG Title", meta.Title)
		assert.Equal(t, "og desc", meta.Description)
	})

	t.Run("returns empty fields when metadata absent", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser()
		meta, err := p.ParseMetadata("<html><body><p>no head</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
	})
}
