package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/srcdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ srcdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements srcdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateDocument records a generated document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *srcdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.GeneratedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)
	doc.Bytes = len(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, run_id, source_path, output_path, title, content, content_hash, bytes, position, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.RunID, doc.SourcePath, doc.OutputPath, doc.Title, doc.Content,
		doc.ContentHash, doc.Bytes, doc.Position, formatTime(doc.GeneratedAt))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*srcdoc.Document, error) {
	var doc srcdoc.Document
	var generatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, source_path, output_path, title, content, content_hash, bytes, position, generated_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.RunID, &doc.SourcePath, &doc.OutputPath, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Bytes, &doc.Position, &generatedAt)

	if err == sql.ErrNoRows {
		return nil, srcdoc.Errorf(srcdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter srcdoc.DocumentFilter) ([]*srcdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, source_path, output_path, title, content, content_hash, bytes, position, generated_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	switch filter.SortBy {
	case srcdoc.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY generated_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*srcdoc.Document
	for rows.Next() {
		var doc srcdoc.Document
		var generatedAt string

		if err := rows.Scan(&doc.ID, &doc.RunID, &doc.SourcePath, &doc.OutputPath, &doc.Title,
			&doc.Content, &doc.ContentHash, &doc.Bytes, &doc.Position, &generatedAt); err != nil {
			return nil, err
		}

		if doc.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsByRun removes all documents recorded for a run.
func (s *DocumentService) DeleteDocumentsByRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE run_id = ?", runID)
	return err
}
