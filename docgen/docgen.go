// Package docgen provides documentation pipeline orchestration.
// It sequences source file discovery, prompt construction, generation,
// and markdown output, collecting a per-run success/failure tally.
package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/srcdoc"
)

// Pipeline orchestrates the documentation of a source tree. Files are
// processed strictly sequentially; the Pacer is the only suspension
// between them.
type Pipeline struct {
	Discoverer   srcdoc.SourceDiscoverer
	Generator    srcdoc.Generator
	Writer       srcdoc.DocumentWriter
	Documents    srcdoc.DocumentService // optional document index
	TokenCounter srcdoc.TokenCounter    // optional prompt token totals
	Pacer        srcdoc.RequestPacer    // optional inter-request delay
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Discovered int
	Succeeded  int
	Failed     int
	Bytes      int
	Tokens     int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type       ProgressType
	Completed  int
	Total      int
	Path       string
	Size       int64
	OutputPath string
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFileCompleted
	ProgressFileFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run documents every discovered file under run.SourceDir. A discovery
// failure aborts the run; a failure while processing a single file is
// counted and reported, and the run continues with the next file. A
// canceled context aborts between files and returns the partial tally
// alongside the error.
func (p *Pipeline) Run(ctx context.Context, run *srcdoc.Run, progress ProgressFunc) (*Result, error) {
	files, err := p.Discoverer.Discover(ctx, run.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}

	result := &Result{Discovered: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	completed := 0
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// The bucket starts full, so the first file never waits and the
		// delay falls between requests, never after the last one.
		if p.Pacer != nil {
			if err := p.Pacer.Wait(ctx); err != nil {
				return result, fmt.Errorf("pacing: %w", err)
			}
		}

		doc, promptTokens, err := p.processFile(ctx, run, i, file)
		completed++

		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFileFailed,
					Completed: completed,
					Total:     total,
					Path:      file.Path,
					Size:      file.Size,
					Error:     err,
				})
			}
			continue
		}

		result.Succeeded++
		result.Bytes += len(doc.Content)
		result.Tokens += promptTokens

		if progress != nil {
			progress(ProgressEvent{
				Type:       ProgressFileCompleted,
				Completed:  completed,
				Total:      total,
				Path:       file.Path,
				Size:       file.Size,
				OutputPath: doc.OutputPath,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: completed,
			Total:     total,
		})
	}

	return result, nil
}

// processFile reads, documents, writes, and optionally indexes a single
// source file. The second return value is the prompt's token count, or
// zero when no counter is configured.
func (p *Pipeline) processFile(ctx context.Context, run *srcdoc.Run, position int, file srcdoc.SourceFile) (*srcdoc.Document, int, error) {
	content, err := os.ReadFile(filepath.Join(run.SourceDir, file.Path))
	if err != nil {
		return nil, 0, fmt.Errorf("read: %w", err)
	}

	prompt := BuildPrompt(file.Path, string(content))

	var promptTokens int
	if p.TokenCounter != nil {
		if n, err := p.TokenCounter.CountTokens(ctx, prompt); err == nil {
			promptTokens = n
		}
	}

	text, err := p.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, 0, fmt.Errorf("generate: %w", err)
	}

	doc := &srcdoc.Document{
		RunID:       run.ID,
		SourcePath:  file.Path,
		Title:       extractTitle(text),
		Content:     text,
		Position:    position,
		GeneratedAt: time.Now().UTC(),
	}

	dest, err := p.Writer.WriteDocument(ctx, doc)
	if err != nil {
		return nil, 0, fmt.Errorf("write: %w", err)
	}
	doc.OutputPath = dest

	if p.Documents != nil {
		if err := p.Documents.CreateDocument(ctx, doc); err != nil {
			return nil, 0, fmt.Errorf("index: %w", err)
		}
	}

	return doc, promptTokens, nil
}

// extractTitle returns the first markdown heading of the generated
// text, or an empty string.
func extractTitle(text string) string {
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "#"); ok {
			return strings.TrimSpace(strings.TrimLeft(rest, "#"))
		}
	}
	return ""
}

// TruncatePath shortens a path for display, keeping the end which is
// more informative.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return path[:min(len(path), maxLen)]
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
