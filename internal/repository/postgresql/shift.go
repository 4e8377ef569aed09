package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

// GetForEmployee implements schedule.ShiftRepository. Per-employee config
// wins over the company default; the NULLS LAST ordering picks the specific
// row when both exist.
func (s *shiftRepository) GetForEmployee(ctx context.Context, employeeID string) (*schedule.ShiftConfig, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, shift_start, shift_end, created_at, updated_at
		FROM shift_configs
		WHERE employee_id = $1 OR employee_id IS NULL
		ORDER BY employee_id NULLS LAST
		LIMIT 1
	`

	var (
		cfg              schedule.ShiftConfig
		startStr, endStr string
	)
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&cfg.ID, &cfg.EmployeeID, &startStr, &endStr, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no shift configured at all, window check is skipped
		}
		return nil, fmt.Errorf("failed to get shift config: %w", err)
	}

	if cfg.ShiftStart, err = schedule.ParseTimeOfDay(startStr); err != nil {
		return nil, fmt.Errorf("corrupt shift_start for config %s: %w", cfg.ID, err)
	}
	if cfg.ShiftEnd, err = schedule.ParseTimeOfDay(endStr); err != nil {
		return nil, fmt.Errorf("corrupt shift_end for config %s: %w", cfg.ID, err)
	}

	return &cfg, nil
}
