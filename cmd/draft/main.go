package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"draft"
	"draft/bloom"
	"draft/gemini"
	"draft/goquery"
	drafthttp "draft/http"
	"draft/htmltomarkdown"
	"draft/retrieve"
	"draft/sqlite"
	"draft/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the reference cache.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Cache draft.ReferenceCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("draft"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'draft --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// The refs command is the only one that needs the database and the
	// retrieval stack; section, merge, and outline work on local files.
	if cmd == "refs" {
		m.DB = sqlite.NewDB(m.DBPath)
		m.DB.Logger = logger
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DRAFT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Cache = sqlite.NewReferenceCache(m.DB)

		pipeline, err := m.newPipeline(ctx, logger, stderr)
		if err != nil {
			return err
		}
		deps.DB = m.DB
		deps.Pipeline = pipeline
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the retrieval stack from environment configuration.
func (m *Main) newPipeline(ctx context.Context, logger *slog.Logger, stderr io.Writer) (*retrieve.Pipeline, error) {
	var searchers []draft.Searcher
	if key := os.Getenv("SERPAPI_API_KEY"); key != "" {
		searchers = append(searchers, drafthttp.NewSerpAPISearcher(key))
	}
	if key := os.Getenv("BING_API_KEY"); key != "" {
		searchers = append(searchers, drafthttp.NewBingSearcher(key))
	}

	registry := retrieve.NewRegistry(logger, searchers...)
	if !registry.Available() {
		fmt.Fprintln(stderr, "Hint: Set SERPAPI_API_KEY or BING_API_KEY to enable search")
		return nil, draft.Errorf(draft.EUNAVAILABLE, "no search provider configured")
	}

	pipeline := &retrieve.Pipeline{
		Searcher:  registry,
		Fetcher:   drafthttp.NewFetcher(),
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Metadata:  goquery.NewParser(),
		Cache:     m.Cache,
		Limiter:   retrieve.NewDomainLimiter(1.0),
		Seen:      bloom.NewFilter(10000, 0.01),
		Logger:    logger,
	}

	// Without a Gemini key references come back unsummarized, with just
	// the provider's title, URL, and snippet.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		pipeline.Summarizer = gemini.NewSummarizer(client, gemini.DefaultModel)
	} else {
		fmt.Fprintln(stderr, "Hint: Set GEMINI_API_KEY to summarize scraped references")
	}

	return pipeline, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("DRAFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "draft.db"
	}
	dir := filepath.Join(home, ".draft")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "draft.db")
}
