package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/document"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

// GetByID implements document.DocumentRepository.
func (d *documentRepository) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, title, file_name, url, category, uploaded_by, created_at
		FROM documents
		WHERE id = $1
	`

	var doc document.Document
	err := q.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.Title, &doc.FileName, &doc.URL, &doc.Category, &doc.UploadedBy, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// List implements document.DocumentRepository.
func (d *documentRepository) List(ctx context.Context, page, limit int) ([]document.Document, int64, error) {
	q := GetQuerier(ctx, d.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := `
		SELECT id, title, file_name, url, category, uploaded_by, created_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		var doc document.Document
		err := rows.Scan(
			&doc.ID, &doc.Title, &doc.FileName, &doc.URL, &doc.Category, &doc.UploadedBy, &doc.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read documents: %w", err)
	}

	return documents, total, nil
}
