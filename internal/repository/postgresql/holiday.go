package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/calendar"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListBetween implements calendar.HolidayRepository.
func (h *holidayRepository) ListBetween(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, name, date
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var hol calendar.Holiday
		if err := rows.Scan(&hol.ID, &hol.Name, &hol.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}
