package srcdoc

import "context"

// SourceFile represents a discovered source file awaiting documentation.
type SourceFile struct {
	// Path is the file's path relative to the run's source directory.
	Path string

	// Size is the file's size in bytes.
	Size int64
}

// SourceDiscoverer enumerates source files beneath a root directory.
// Implementations hide the traversal and extension-matching strategy.
type SourceDiscoverer interface {
	// Discover returns the source files beneath root, recursively, in
	// traversal order. An empty result is not an error; traversal
	// failures are.
	Discover(ctx context.Context, root string) ([]SourceFile, error)
}
