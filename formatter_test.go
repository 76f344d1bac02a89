package draft_test

import (
	"testing"

	"draft"

	"github.com/stretchr/testify/assert"
)

func TestFormatReferences(t *testing.T) {
	t.Parallel()

	t.Run("formats title, url and highlights", func(t *testing.T) {
		t.Parallel()

		refs := []draft.Reference{
			{
				Title:      "Designing Data-Intensive Applications",
				URL:        "https://example.com/ddia",
				Highlights: []string{"partitioning", "replication"},
			},
		}

		out := draft.FormatReferences(refs)

		assert.Contains(t, out, "## Reference: Designing Data-Intensive Applications")
		assert.Contains(t, out, "https://example.com/ddia")
		assert.Contains(t, out, "- partitioning")
		assert.Contains(t, out, "- replication")
	})

	t.Run("falls back to URL when title missing", func(t *testing.T) {
		t.Parallel()

		refs := []draft.Reference{{URL: "https://example.com/post"}}

		out := draft.FormatReferences(refs)

		assert.Contains(t, out, "## Reference: https://example.com/post")
	})

	t.Run("uses snippet when no highlights", func(t *testing.T) {
		t.Parallel()

		refs := []draft.Reference{{Title: "T", URL: "u", Snippet: "short summary"}}

		assert.Contains(t, draft.FormatReferences(refs), "short summary")
	})

	t.Run("returns empty string for no references", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, draft.FormatReferences(nil))
	})
}
