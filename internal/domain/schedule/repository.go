package schedule

import "context"

// ShiftRepository reads shift configuration.
type ShiftRepository interface {
	// GetForEmployee returns the employee's shift config, falling back to
	// the company default. Returns nil when neither exists; callers then
	// skip the shift window entirely.
	GetForEmployee(ctx context.Context, employeeID string) (*ShiftConfig, error)
}
