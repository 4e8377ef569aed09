package notice

import "context"

type NoticeRepository interface {
	// Create publishes a notice.
	Create(ctx context.Context, n Notice) (Notice, error)

	// List returns a page of notices, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]Notice, int64, error)
}
