package trafilatura_test

import (
	"testing"

	"draft"
	"draft/trafilatura"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements draft.Extractor at compile time.
var _ draft.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<!DOCTYPE html>
<html>
<head><title>Consistent Hashing Explained</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<main>
<article>
<h1>Consistent Hashing Explained</h1>
<p>Consistent hashing maps both servers and keys onto a ring so that adding
or removing a server only remaps a small fraction of the keys. This keeps
cache invalidation bounded during cluster membership changes.</p>
<p>Virtual nodes smooth out the distribution by giving each physical server
multiple positions on the ring.</p>
</article>
</main>
<footer>Copyright 2026</footer>
</body>
</html>`

		extractor := trafilatura.NewExtractor()
		result, err := extractor.Extract(rawHTML)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Consistent Hashing")
		assert.Contains(t, result.ContentHTML, "Virtual nodes")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		extractor := trafilatura.NewExtractor()
		_, err := extractor.Extract("")

		require.Error(t, err)
	})
}
