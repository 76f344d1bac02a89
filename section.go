package draft

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading represents a heading in a markdown document.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// LocateSection splits a markdown document around the named section.
//
// A heading matches if its text equals name case-insensitively after
// whitespace normalization. Only when no heading in the document matches
// exactly does the first heading whose text contains name (also
// case-insensitively) win instead. The section spans from the matched
// heading to the next heading of equal or lesser level, or end of
// document, so nested sub-headings of greater level stay inside it.
//
// When no heading matches at all, the full document is returned as before
// with empty section and after. Callers treat the empty section as
// "not found"; it is not an error.
func LocateSection(document, name string) (before, section, after string) {
	lines := strings.Split(document, "\n")

	start, level := findHeading(lines, name)
	if start == -1 {
		return document, "", ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if l, _, ok := parseHeading(lines[i]); ok && l <= level {
			end = i
			break
		}
	}

	return strings.Join(lines[:start], "\n"),
		strings.Join(lines[start:end], "\n"),
		strings.Join(lines[end:], "\n")
}

// findHeading returns the line index and level of the heading matching name,
// or (-1, 0) if none matches.
func findHeading(lines []string, name string) (int, int) {
	want := normalizeTitle(name)

	for i, line := range lines {
		if level, title, ok := parseHeading(line); ok && normalizeTitle(title) == want {
			return i, level
		}
	}

	// No exact match anywhere: fall back to the first heading whose text
	// contains the name.
	contains := strings.ToLower(strings.TrimSpace(name))
	for i, line := range lines {
		if level, title, ok := parseHeading(line); ok && strings.Contains(strings.ToLower(title), contains) {
			return i, level
		}
	}

	return -1, 0
}

// MergeSections reassembles a document from its three fragments.
// Each fragment is trimmed of surrounding whitespace, empty fragments are
// dropped, and the survivors are joined with exactly one blank line.
// Relative order is preserved.
func MergeSections(before, section, after string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{before, section, after} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n\n")
}

// parseHeading reports whether line is a markdown heading, returning its
// level (leading marker count) and title text.
func parseHeading(line string) (level int, title string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}

// normalizeTitle lowercases s and collapses internal whitespace.
func normalizeTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ExtractHeadings parses markdown and returns all headings (H1-H6).
// It generates URL-safe anchors and handles duplicates with numeric
// suffixes, for callers that present a section outline.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	// Remove code blocks to avoid matching # in code
	cleaned := removeCodeBlocks(markdown)

	headingRe := regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	anchorCounts := make(map[string]int)

	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		baseAnchor := generateAnchor(title)

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		headings = append(headings, Heading{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return headings
}

// removeCodeBlocks removes fenced code blocks from markdown.
func removeCodeBlocks(s string) string {
	codeBlockRe := regexp.MustCompile("(?s)```.*?```")
	return codeBlockRe.ReplaceAllString(s, "")
}

// generateAnchor creates a URL-safe anchor from a title.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
