package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of srcdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn       func(ctx context.Context, doc *srcdoc.Document) error
	FindDocumentByIDFn     func(ctx context.Context, id string) (*srcdoc.Document, error)
	FindDocumentsFn        func(ctx context.Context, filter srcdoc.DocumentFilter) ([]*srcdoc.Document, error)
	DeleteDocumentsByRunFn func(ctx context.Context, runID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *srcdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*srcdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter srcdoc.DocumentFilter) ([]*srcdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocumentsByRun(ctx context.Context, runID string) error {
	return s.DeleteDocumentsByRunFn(ctx, runID)
}
