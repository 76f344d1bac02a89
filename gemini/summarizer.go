// Package gemini provides Google Gemini-backed implementations of draft
// interfaces.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"draft"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// maxExcerptChars bounds how much page content is sent per reference.
const maxExcerptChars = 2000

// Ensure Summarizer implements draft.Summarizer at compile time.
var _ draft.Summarizer = (*Summarizer)(nil)

// Summarizer implements draft.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize analyzes page content in the context of the user's query and
// returns a structured reference.
func (s *Summarizer) Summarize(ctx context.Context, title, url, content, query string) (*draft.Reference, error) {
	if url == "" {
		return nil, draft.Errorf(draft.EINVALID, "reference URL required")
	}
	if content == "" {
		return nil, draft.Errorf(draft.EINVALID, "reference content required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildSummaryPrompt(title, url, content, query)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, draft.Errorf(draft.EINTERNAL, "gemini returned nil result")
	}

	return ParseSummary(result.Text())
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You analyze system design references and extract structured information. Respond with JSON only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildSummaryPrompt builds the user prompt for one reference.
func BuildSummaryPrompt(title, url, content, query string) string {
	if len(content) > maxExcerptChars {
		content = content[:maxExcerptChars]
	}

	var sb strings.Builder
	sb.WriteString("<reference>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<url>%s</url>\n", url)
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</reference>\n\n")
	fmt.Fprintf(&sb, "User query: %s\n\n", query)
	sb.WriteString(`Extract from the reference, as JSON with these exact keys:
{"title": "...", "url": "...", "highlights": ["..."], "assumptions": ["..."], "components": ["..."], "confidence_score": 0.0}
Rules: up to 3 concise highlights; confidence_score in [0,1] reflects relevance to the user query; use a score below 0.3 when the content is not relevant.`)
	return sb.String()
}

// summaryPayload matches the JSON shape the model is asked to produce.
type summaryPayload struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Highlights  []string `json:"highlights"`
	Assumptions []string `json:"assumptions"`
	Components  []string `json:"components"`
	Confidence  float64  `json:"confidence_score"`
}

// ParseSummary decodes a model response into a reference.
// Stray markdown code fences around the JSON are tolerated.
func ParseSummary(text string) (*draft.Reference, error) {
	cleaned := trimFences(text)

	var payload summaryPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, draft.Errorf(draft.EINTERNAL, "failed to decode summary: %v", err)
	}

	return &draft.Reference{
		Title:       payload.Title,
		URL:         payload.URL,
		Highlights:  payload.Highlights,
		Assumptions: payload.Assumptions,
		Components:  payload.Components,
		Confidence:  payload.Confidence,
	}, nil
}

// trimFences strips a surrounding markdown code fence, if present.
func trimFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
