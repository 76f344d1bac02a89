package main

import (
	"fmt"
	"os"
	"strings"

	"draft"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
		return err
	}

	headings := draft.ExtractHeadings(string(data))
	if len(headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		if c.Anchors {
			fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", indent, h.Title, h.Anchor)
		} else {
			fmt.Fprintf(deps.Stdout, "%s%s\n", indent, h.Title)
		}
	}

	return nil
}
