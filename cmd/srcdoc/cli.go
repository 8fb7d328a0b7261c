package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/docgen"
	"github.com/fwojciec/srcdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Runs      srcdoc.RunService
	Documents srcdoc.DocumentService
	Pipeline  *docgen.Pipeline

	// Model is the resolved model name recorded on new runs.
	Model string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate markdown documentation for a source folder"`
	Runs     RunsCmd     `cmd:"" help:"List past documentation runs"`
	Docs     DocsCmd     `cmd:"" help:"List documents generated by a run"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a run and its document index"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Folder   string        `arg:"" help:"Source folder to document"`
	Output   string        `short:"o" required:"" help:"Output directory for generated markdown"`
	Provider string        `default:"gemini" enum:"gemini,anthropic" help:"Generation provider"`
	Model    string        `short:"m" help:"Model name (provider default when unset)"`
	Ext      []string      `short:"e" name:"ext" help:"Source file extension to include (repeatable)"`
	Delay    time.Duration `default:"500ms" help:"Pause between generation requests"`
	Verbose  bool          `short:"v" help:"Per-file detail instead of in-place progress"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	RunID string `arg:"" optional:"" help:"Run ID (defaults to the most recent run)"`
	Full  bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
