package calendar

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// ListBetween returns holidays in [start, end], ordered by date.
	ListBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
