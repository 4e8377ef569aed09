package notice

import "context"

type NoticeService interface {
	// List returns a page of notices, newest first, through the cache.
	List(ctx context.Context, page, limit int) (ListNoticesResponse, error)

	// Create publishes a notice (admin) and invalidates the list cache.
	Create(ctx context.Context, req CreateNoticeRequest) (Notice, error)
}
