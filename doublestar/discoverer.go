// Package doublestar provides glob-based source file discovery.
package doublestar

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/srcdoc"
)

// DefaultExtensions is the extension filter used when none is configured.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".go", ".py"}

// Ensure Discoverer implements srcdoc.SourceDiscoverer at compile time.
var _ srcdoc.SourceDiscoverer = (*Discoverer)(nil)

// Discoverer finds source files beneath a root directory by expanding
// a recursive glob pattern per configured extension.
type Discoverer struct {
	extensions []string
}

// NewDiscoverer creates a Discoverer for the given extensions.
// Extensions may be given with or without a leading dot; an empty list
// falls back to DefaultExtensions.
func NewDiscoverer(extensions ...string) *Discoverer {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return &Discoverer{extensions: normalized}
}

// Discover returns the source files beneath root matching the extension
// filter, recursively, as paths relative to root. Directories are never
// returned. An empty result is not an error, but any I/O error during
// traversal is: an unreadable subdirectory fails the whole discovery
// rather than silently dropping its files.
func (d *Discoverer) Discover(ctx context.Context, root string) ([]srcdoc.SourceFile, error) {
	return d.discover(ctx, os.DirFS(root))
}

func (d *Discoverer) discover(ctx context.Context, fsys fs.FS) ([]srcdoc.SourceFile, error) {
	seen := make(map[string]bool)
	var files []srcdoc.SourceFile

	for _, ext := range d.extensions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(fsys, "**/*"+ext,
			doublestar.WithFilesOnly(),
			doublestar.WithFailOnIOErrors(),
		)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := fs.Stat(fsys, match)
			if err != nil {
				return nil, err
			}

			files = append(files, srcdoc.SourceFile{
				Path: match,
				Size: info.Size(),
			})
		}
	}

	return files, nil
}
