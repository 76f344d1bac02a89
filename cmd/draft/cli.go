package main

import (
	"context"
	"io"

	"draft/retrieve"
	"draft/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Pipeline *retrieve.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Section SectionCmd `cmd:"" help:"Print a named section of a markdown document"`
	Merge   MergeCmd   `cmd:"" help:"Replace a named section with new content"`
	Outline OutlineCmd `cmd:"" help:"Print the heading outline of a markdown document"`
	Refs    RefsCmd    `cmd:"" help:"Search, scrape, and summarize references for a query"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	File string `arg:"" help:"Markdown file to read"`
	Name string `arg:"" help:"Section heading to locate"`
}

// MergeCmd is the "merge" subcommand.
type MergeCmd struct {
	File    string `arg:"" help:"Markdown file to read"`
	Name    string `arg:"" help:"Section heading to replace"`
	Content string `arg:"" help:"File with the replacement section, or '-' for stdin"`
	Write   bool   `short:"w" help:"Rewrite the file in place instead of printing"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	File    string `arg:"" help:"Markdown file to read"`
	Anchors bool   `short:"a" help:"Include heading anchors"`
}

// RefsCmd is the "refs" subcommand.
type RefsCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"5" help:"Maximum number of references"`
}
