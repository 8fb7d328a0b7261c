package main

import (
	"fmt"

	"github.com/fwojciec/srcdoc"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, srcdoc.RunFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'srcdoc generate' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s -> %s  %d ok / %d failed\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.SourceDir, r.OutputDir,
			r.Succeeded, r.Failed)
	}

	return nil
}
