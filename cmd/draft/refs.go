package main

import (
	"fmt"

	"draft"
)

// Run executes the refs command.
func (c *RefsCmd) Run(deps *Dependencies) error {
	refs, err := deps.Pipeline.Retrieve(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draft.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintln(deps.Stdout, "No references found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, draft.FormatReferences(refs))
	return nil
}
