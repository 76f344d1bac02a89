package bloom_test

import (
	"fmt"
	"testing"

	"draft/bloom"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URLs test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://example.com/a")
		f.Add("https://example.com/b")

		assert.True(t, f.Test("https://example.com/a"))
		assert.True(t, f.Test("https://example.com/b"))
	})

	t.Run("unseen URLs test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://example.com/a")

		assert.False(t, f.Test("https://example.com/never-added"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("https://example.com/%d", i))
		}

		count := f.EstimatedCount()
		assert.InDelta(t, 100, float64(count), 10)
	})
}
