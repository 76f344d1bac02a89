package main

import (
	"fmt"
	"os"
	"strings"

	"draft"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
		return err
	}

	_, section, _ := draft.LocateSection(string(data), c.Name)
	if section == "" {
		fmt.Fprintf(deps.Stderr, "error: section %q not found in %s. Use 'draft outline' to see available headings.\n", c.Name, c.File)
		return draft.Errorf(draft.ENOTFOUND, "section %q not found", c.Name)
	}

	fmt.Fprintln(deps.Stdout, strings.TrimRight(section, "\n"))
	return nil
}
