package document

import "context"

type DocumentService interface {
	// List returns a page of document metadata, through the cache.
	List(ctx context.Context, page, limit int) (ListDocumentsResponse, error)

	// Get returns one document's metadata, through the cache.
	Get(ctx context.Context, id string) (Document, error)
}

type ListDocumentsResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Documents  []Document `json:"documents"`
}
