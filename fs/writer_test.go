package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "simple file",
			source: "main.js",
			want:   "main.md",
		},
		{
			name:   "nested file",
			source: "lib/utils/parse.js",
			want:   "lib/utils/parse.md",
		},
		{
			name:   "go file",
			source: "internal/server/server.go",
			want:   "internal/server/server.md",
		},
		{
			name:   "multiple dots keep earlier ones",
			source: "app.config.ts",
			want:   "app.config.md",
		},
		{
			name:   "extensionless file gets md appended",
			source: "scripts/Makefile",
			want:   "scripts/Makefile.md",
		},
		{
			name:   "hidden file gets md appended",
			source: ".env",
			want:   ".env.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.SourceToPath(tt.source))
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("formats document with frontmatter", func(t *testing.T) {
		t.Parallel()

		doc := &srcdoc.Document{
			SourcePath:  "lib/parse.js",
			Content:     "# parse.js\n\nParses things.",
			GeneratedAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		}

		got := fs.FormatDocument(doc)

		want := `---
source: lib/parse.js
generated: 2026-08-30
---

# parse.js

Parses things.`

		assert.Equal(t, want, got)
	})
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ srcdoc.DocumentWriter = &fs.Writer{}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes document to mirrored path", func(t *testing.T) {
		t.Parallel()

		outputDir := t.TempDir()
		w := fs.NewWriter(outputDir)

		doc := &srcdoc.Document{
			RunID:       "run-1",
			SourcePath:  "lib/utils/parse.js",
			Content:     "# parse.js\n\nParses things.",
			GeneratedAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		}

		dest, err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(outputDir, "lib/utils/parse.md"), dest)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: lib/utils/parse.js")
		assert.Contains(t, string(content), "# parse.js")
	})

	t.Run("creates intermediate directories", func(t *testing.T) {
		t.Parallel()

		outputDir := t.TempDir()
		w := fs.NewWriter(outputDir)

		doc := &srcdoc.Document{
			RunID:      "run-1",
			SourcePath: "a/b/c/d.go",
			Content:    "docs",
		}

		dest, err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		_, err = os.Stat(dest)
		require.NoError(t, err)
	})

	t.Run("overwrites existing files", func(t *testing.T) {
		t.Parallel()

		outputDir := t.TempDir()
		w := fs.NewWriter(outputDir)

		doc := &srcdoc.Document{
			RunID:      "run-1",
			SourcePath: "main.js",
			Content:    "first version",
		}

		_, err := w.WriteDocument(context.Background(), doc)
		require.NoError(t, err)

		doc.Content = "second version"
		dest, err := w.WriteDocument(context.Background(), doc)
		require.NoError(t, err)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Contains(t, string(content), "second version")
		assert.NotContains(t, string(content), "first version")
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		doc := &srcdoc.Document{RunID: "run-1"} // missing source path
		_, err := w.WriteDocument(context.Background(), doc)

		require.Error(t, err)
		assert.Equal(t, srcdoc.EINVALID, srcdoc.ErrorCode(err))
	})

	t.Run("propagates write failures", func(t *testing.T) {
		t.Parallel()

		outputDir := t.TempDir()
		// Make the output root read-only so MkdirAll fails
		require.NoError(t, os.Chmod(outputDir, 0555))
		t.Cleanup(func() { _ = os.Chmod(outputDir, 0755) })

		w := fs.NewWriter(outputDir)
		doc := &srcdoc.Document{
			RunID:      "run-1",
			SourcePath: "a/b.js",
			Content:    "docs",
		}

		_, err := w.WriteDocument(context.Background(), doc)
		assert.Error(t, err)
	})
}
