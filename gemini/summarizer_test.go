package gemini_test

import (
	"strings"
	"testing"

	"draft"
	"draft/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes reference fields and query", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildSummaryPrompt("Title", "https://example.com", "body text", "design a feed")

		assert.Contains(t, prompt, "<title>Title</title>")
		assert.Contains(t, prompt, "<url>https://example.com</url>")
		assert.Contains(t, prompt, "body text")
		assert.Contains(t, prompt, "User query: design a feed")
	})

	t.Run("truncates long content", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 10000)
		prompt := gemini.BuildSummaryPrompt("T", "u", long, "q")

		assert.Less(t, len(prompt), 4000)
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.Temperature)
}

func TestParseSummary(t *testing.T) {
	t.Parallel()

	t.Run("decodes structured summary", func(t *testing.T) {
		t.Parallel()

		ref, err := gemini.ParseSummary(`{
			"title": "Feed Design",
			"url": "https://example.com/feed",
			"highlights": ["fan-out on write", "celebrity problem"],
			"assumptions": ["read-heavy"],
			"components": ["timeline cache"],
			"confidence_score": 0.85
		}`)

		require.NoError(t, err)
		assert.Equal(t, "Feed Design", ref.Title)
		assert.Equal(t, []string{"fan-out on write", "celebrity problem"}, ref.Highlights)
		assert.Equal(t, []string{"read-heavy"}, ref.Assumptions)
		assert.Equal(t, []string{"timeline cache"}, ref.Components)
		assert.InDelta(t, 0.85, ref.Confidence, 0.001)
	})

	t.Run("tolerates markdown code fences", func(t *testing.T) {
		t.Parallel()

		ref, err := gemini.ParseSummary("```json\n{\"title\": \"T\", \"url\": \"u\", \"confidence_score\": 0.5}\n```")

		require.NoError(t, err)
		assert.Equal(t, "T", ref.Title)
	})

	t.Run("returns EINTERNAL for malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSummary("not json at all")

		require.Error(t, err)
		assert.Equal(t, draft.EINTERNAL, draft.ErrorCode(err))
	})
}
