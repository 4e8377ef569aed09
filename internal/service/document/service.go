package document

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/document"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type DocumentServiceImpl struct {
	repo  document.DocumentRepository
	cache cache.Store
}

func NewDocumentService(repo document.DocumentRepository, cacheStore cache.Store) document.DocumentService {
	return &DocumentServiceImpl{
		repo:  repo,
		cache: cacheStore,
	}
}

// List implements document.DocumentService.
func (s *DocumentServiceImpl) List(ctx context.Context, page, limit int) (document.ListDocumentsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	key := cache.DocumentListKey(page, limit)
	resp, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLDocuments, func(ctx context.Context) (document.ListDocumentsResponse, error) {
		documents, total, err := s.repo.List(ctx, page, limit)
		if err != nil {
			return document.ListDocumentsResponse{}, err
		}
		return document.ListDocumentsResponse{
			TotalCount: total,
			Page:       page,
			Limit:      limit,
			Documents:  documents,
		}, nil
	})
	if err != nil {
		return document.ListDocumentsResponse{}, fmt.Errorf("failed to list documents: %w", err)
	}

	return resp, nil
}

// Get implements document.DocumentService.
func (s *DocumentServiceImpl) Get(ctx context.Context, id string) (document.Document, error) {
	key := cache.DocumentKey(id)
	return cache.GetOrLoad(ctx, s.cache, key, cache.TTLDocuments, func(ctx context.Context) (document.Document, error) {
		return s.repo.GetByID(ctx, id)
	})
}
