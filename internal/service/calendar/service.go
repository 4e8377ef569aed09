package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/calendar"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	repo  calendar.HolidayRepository
	cache cache.Store
}

func NewHolidayService(repo calendar.HolidayRepository, cacheStore cache.Store) calendar.HolidayService {
	return &HolidayServiceImpl{
		repo:  repo,
		cache: cacheStore,
	}
}

// ListBetween implements calendar.HolidayService.
func (s *HolidayServiceImpl) ListBetween(ctx context.Context, startDate, endDate string) ([]calendar.Holiday, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		// Default to the current calendar year.
		now := time.Now().UTC()
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		startDate = start.Format("2006-01-02")
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		end = time.Date(start.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
		endDate = end.Format("2006-01-02")
	}

	key := cache.HolidaysKey(startDate, endDate)
	holidays, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLHolidays, func(ctx context.Context) ([]calendar.Holiday, error) {
		return s.repo.ListBetween(ctx, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	return holidays, nil
}
