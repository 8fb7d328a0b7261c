package srcdoc

import (
	"context"
	"time"
)

// Document represents one generated documentation file.
type Document struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	SourcePath  string    `json:"sourcePath"`
	OutputPath  string    `json:"outputPath"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	Position    int       `json:"position"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.RunID == "" {
		return Errorf(EINVALID, "document run ID required")
	}
	if d.SourcePath == "" {
		return Errorf(EINVALID, "document source path required")
	}
	return nil
}

// DocumentWriter persists a document as a markdown file.
type DocumentWriter interface {
	// WriteDocument writes the document under the writer's output root,
	// mirroring the source file's relative location, and returns the
	// resolved destination path. Existing files are overwritten.
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}

// DocumentService represents a service for managing the document index.
type DocumentService interface {
	// CreateDocument records a generated document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsByRun removes all documents recorded for a run.
	DeleteDocumentsByRun(ctx context.Context, runID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByGeneratedAt SortOrder = "generated_at"
	SortByPosition    SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string `json:"id"`
	RunID      *string `json:"runId"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
