package document

import "context"

type DocumentRepository interface {
	// GetByID returns one document. Returns ErrDocumentNotFound when absent.
	GetByID(ctx context.Context, id string) (Document, error)

	// List returns a page of documents, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]Document, int64, error)
}
