package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of srcdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *srcdoc.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *srcdoc.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
