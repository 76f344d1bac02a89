package draft

import (
	"fmt"
	"strings"
)

// FormatReferences formats references for display or LLM context.
// Uses the title if available, falls back to the URL.
func FormatReferences(refs []Reference) string {
	if len(refs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		header := ref.Title
		if header == "" {
			header = ref.URL
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "## Reference: %s\n%s\n", header, ref.URL)
		for _, h := range ref.Highlights {
			fmt.Fprintf(&sb, "- %s\n", h)
		}
		if ref.Snippet != "" && len(ref.Highlights) == 0 {
			fmt.Fprintf(&sb, "%s\n", ref.Snippet)
		}
		parts = append(parts, strings.TrimRight(sb.String(), "\n"))
	}

	return strings.Join(parts, "\n\n")
}
