package calendar

import "context"

type HolidayService interface {
	// ListBetween returns holidays in a date range (inclusive), through
	// the cache. Dates are "YYYY-MM-DD".
	ListBetween(ctx context.Context, startDate, endDate string) ([]Holiday, error)
}
