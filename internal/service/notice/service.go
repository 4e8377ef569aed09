package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/notice"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type NoticeServiceImpl struct {
	repo  notice.NoticeRepository
	cache cache.Store
	now   func() time.Time
}

func NewNoticeService(repo notice.NoticeRepository, cacheStore cache.Store) notice.NoticeService {
	return &NoticeServiceImpl{
		repo:  repo,
		cache: cacheStore,
		now:   time.Now,
	}
}

// List implements notice.NoticeService.
func (s *NoticeServiceImpl) List(ctx context.Context, page, limit int) (notice.ListNoticesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	key := cache.NoticeListKey(page, limit)
	resp, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLNotices, func(ctx context.Context) (notice.ListNoticesResponse, error) {
		notices, total, err := s.repo.List(ctx, page, limit)
		if err != nil {
			return notice.ListNoticesResponse{}, err
		}
		return notice.ListNoticesResponse{
			TotalCount: total,
			Page:       page,
			Limit:      limit,
			Notices:    notices,
		}, nil
	})
	if err != nil {
		return notice.ListNoticesResponse{}, fmt.Errorf("failed to list notices: %w", err)
	}

	return resp, nil
}

// Create implements notice.NoticeService.
func (s *NoticeServiceImpl) Create(ctx context.Context, req notice.CreateNoticeRequest) (notice.Notice, error) {
	if err := req.Validate(); err != nil {
		return notice.Notice{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return notice.Notice{}, err
	}

	created, err := s.repo.Create(ctx, notice.Notice{
		Title:       req.Title,
		Body:        req.Body,
		CreatedBy:   &actor.UserID,
		PublishedAt: s.now().UTC(),
	})
	if err != nil {
		return notice.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}

	cache.Invalidate(ctx, s.cache, cache.NoticeListKey(1, 20))

	return created, nil
}
