package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/docgen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	if strings.TrimSpace(c.Folder) == "" {
		fmt.Fprintf(deps.Stderr, "error: source folder required\n")
		return srcdoc.Errorf(srcdoc.EINVALID, "source folder required")
	}
	if strings.TrimSpace(c.Output) == "" {
		fmt.Fprintf(deps.Stderr, "error: output directory required\n")
		return srcdoc.Errorf(srcdoc.EINVALID, "output directory required")
	}

	info, err := os.Stat(c.Folder)
	if os.IsNotExist(err) {
		fmt.Fprintf(deps.Stderr, "error: folder %q does not exist\n", c.Folder)
		return srcdoc.Errorf(srcdoc.ENOTFOUND, "folder %q does not exist", c.Folder)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}
	if !info.IsDir() {
		fmt.Fprintf(deps.Stderr, "error: %q is not a directory\n", c.Folder)
		return srcdoc.Errorf(srcdoc.EINVALID, "%q is not a directory", c.Folder)
	}

	run := &srcdoc.Run{
		SourceDir: c.Folder,
		OutputDir: c.Output,
		Model:     deps.Model,
	}
	if deps.Runs != nil {
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
			return err
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, run, c.progressFunc(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}

	if result.Discovered == 0 {
		fmt.Fprintf(deps.Stdout, "Warning: no matching source files found in %s\n", c.Folder)
		c.finishRun(deps, run, result)
		return nil
	}

	outputDir := c.Output
	if abs, err := filepath.Abs(c.Output); err == nil {
		outputDir = abs
	}

	fmt.Fprintf(deps.Stdout, "%d files successfully documented (%s, %s)\n",
		result.Succeeded, docgen.FormatBytes(result.Bytes), docgen.FormatTokens(result.Tokens))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d files failed\n", result.Failed)
	}
	fmt.Fprintf(deps.Stdout, "Output: %s\n", outputDir)

	c.finishRun(deps, run, result)
	return nil
}

// finishRun records the final tally on the run.
func (c *GenerateCmd) finishRun(deps *Dependencies, run *srcdoc.Run, result *docgen.Result) {
	if deps.Runs == nil || run.ID == "" {
		return
	}
	finished := time.Now().UTC()
	if _, err := deps.Runs.UpdateRun(deps.Ctx, run.ID, srcdoc.RunUpdate{
		Succeeded:  &result.Succeeded,
		Failed:     &result.Failed,
		FinishedAt: &finished,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: could not record run summary: %s\n", srcdoc.ErrorMessage(err))
	}
}

// progressFunc returns the console progress callback for the selected
// verbosity tier.
func (c *GenerateCmd) progressFunc(deps *Dependencies) docgen.ProgressFunc {
	if c.Verbose {
		return c.verboseProgress(deps)
	}
	return c.terseProgress(deps)
}

// terseProgress renders a single-line in-place progress indicator.
func (c *GenerateCmd) terseProgress(deps *Dependencies) docgen.ProgressFunc {
	return func(event docgen.ProgressEvent) {
		switch event.Type {
		case docgen.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d source files\n", event.Total)
		case docgen.ProgressFileCompleted:
			fmt.Fprintf(deps.Stdout, "\r  [%d/%d] %s\x1b[K", event.Completed, event.Total, docgen.TruncatePath(event.Path, 50))
		case docgen.ProgressFileFailed:
			fmt.Fprintf(deps.Stdout, "\r\x1b[K")
			fmt.Fprintf(deps.Stderr, "  %s %s: %s\n", color.RedString("skip"), event.Path, srcdoc.ErrorMessage(event.Error))
		case docgen.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r\x1b[K")
		}
	}
}

// verboseProgress renders a multi-line per-file trace.
func (c *GenerateCmd) verboseProgress(deps *Dependencies) docgen.ProgressFunc {
	return func(event docgen.ProgressEvent) {
		switch event.Type {
		case docgen.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d source files in %s\n", event.Total, c.Folder)
		case docgen.ProgressFileCompleted:
			fmt.Fprintf(deps.Stdout, "  %s [%d/%d] %s (%s) -> %s\n",
				color.GreenString("ok"), event.Completed, event.Total,
				event.Path, docgen.FormatBytes(int(event.Size)), event.OutputPath)
		case docgen.ProgressFileFailed:
			fmt.Fprintf(deps.Stderr, "  %s [%d/%d] %s (%s): %s\n",
				color.RedString("fail"), event.Completed, event.Total,
				event.Path, docgen.FormatBytes(int(event.Size)), srcdoc.ErrorMessage(event.Error))
		}
	}
}
