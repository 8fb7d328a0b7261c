package main

import (
	"fmt"

	"github.com/fwojciec/srcdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return srcdoc.Errorf(srcdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.RunID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.RunID)
	return nil
}
