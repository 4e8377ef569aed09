package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workforcehq/workforce-backend-go/internal/domain/notice"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type noticeRepository struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepository{db: db}
}

// Create implements notice.NoticeRepository.
func (n *noticeRepository) Create(ctx context.Context, newNotice notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, n.db)

	newNotice.ID = uuid.NewString()

	query := `
		INSERT INTO notices (id, title, body, created_by, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newNotice.ID, newNotice.Title, newNotice.Body, newNotice.CreatedBy, newNotice.PublishedAt,
	).Scan(&newNotice.CreatedAt)
	if err != nil {
		return notice.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}

	return newNotice, nil
}

// List implements notice.NoticeRepository.
func (n *noticeRepository) List(ctx context.Context, page, limit int) ([]notice.Notice, int64, error) {
	q := GetQuerier(ctx, n.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	query := `
		SELECT id, title, body, created_by, published_at, created_at
		FROM notices
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var item notice.Notice
		err := rows.Scan(
			&item.ID, &item.Title, &item.Body, &item.CreatedBy, &item.PublishedAt, &item.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notices: %w", err)
	}

	return notices, total, nil
}
