package main

import (
	"fmt"

	"github.com/fwojciec/srcdoc"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	runID := c.RunID
	if runID == "" {
		runs, err := deps.Runs.FindRuns(deps.Ctx, srcdoc.RunFilter{Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintf(deps.Stderr, "error: no runs recorded. Use 'srcdoc generate' to create one.\n")
			return srcdoc.Errorf(srcdoc.ENOTFOUND, "no runs recorded")
		}
		runID = runs[0].ID
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, srcdoc.DocumentFilter{
		RunID:  &runID,
		SortBy: srcdoc.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: run %q has no documents. Use 'srcdoc runs' to see available runs.\n", runID)
		return srcdoc.Errorf(srcdoc.ENOTFOUND, "run %q has no documents", runID)
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprintln(deps.Stdout, doc.Content)
			fmt.Fprintln(deps.Stdout)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for run %s (%d total):\n\n", runID, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourcePath
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s -> %s\n", i+1, title, doc.SourcePath, doc.OutputPath)
	}

	return nil
}
