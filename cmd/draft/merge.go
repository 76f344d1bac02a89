package main

import (
	"fmt"
	"io"
	"os"

	"draft"
)

// Run executes the merge command.
func (c *MergeCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
		return err
	}

	before, section, after := draft.LocateSection(string(data), c.Name)
	if section == "" {
		fmt.Fprintf(deps.Stderr, "error: section %q not found in %s. Use 'draft outline' to see available headings.\n", c.Name, c.File)
		return draft.Errorf(draft.ENOTFOUND, "section %q not found", c.Name)
	}

	replacement, err := c.readContent(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read replacement content\n")
		return err
	}

	merged := draft.MergeSections(before, replacement, after)

	if c.Write {
		if err := os.WriteFile(c.File, []byte(merged+"\n"), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot write %s\n", c.File)
			return err
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, merged)
	return nil
}

func (c *MergeCmd) readContent(stdin io.Reader) (string, error) {
	if c.Content == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(c.Content)
	return string(data), err
}
