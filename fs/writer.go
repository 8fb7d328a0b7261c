// Package fs provides file-based output for generated documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/srcdoc"
)

// SourceToPath converts a relative source file path to the mirrored
// markdown path. The extension is replaced with .md; extensionless
// names get .md appended.
// Example: lib/utils/parse.js → lib/utils/parse.md
func SourceToPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := filepath.Base(sourcePath)

	// A leading dot is a hidden file, not an extension
	if ext == "" || ext == base {
		return sourcePath + ".md"
	}

	return strings.TrimSuffix(sourcePath, ext) + ".md"
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *srcdoc.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourcePath)
	b.WriteString("\ngenerated: ")
	b.WriteString(doc.GeneratedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements srcdoc.DocumentWriter at compile time.
var _ srcdoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory, mirroring
// each source file's relative location.
type Writer struct {
	outputDir string
}

// NewWriter creates a new Writer that writes under the given output
// directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteDocument writes a document to disk as a markdown file and
// returns the resolved destination path. Existing files are
// overwritten.
func (w *Writer) WriteDocument(ctx context.Context, doc *srcdoc.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	relPath := SourceToPath(doc.SourcePath)
	fullPath := filepath.Join(w.outputDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	content := FormatDocument(doc)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
