package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// owns the (employee_id, date) uniqueness invariant; Create surfaces a
// violation as ErrAlreadyClockedIn so a concurrent duplicate clock-in is
// resolved by the constraint, not by a prior read.
type AttendanceRepository interface {
	// Create inserts the record written at clock-in.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for one employee and day, or
	// nil when no record exists (a derived "absent").
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// GetOpenSession returns the employee's running session.
	// Returns ErrNotClockedIn when there is none.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// SetClockOut closes a record exactly once. Returns ErrAttendanceNotFound
	// for an unknown id and ErrAlreadyClockedOut when clock_out is already
	// set; the stored timestamp is never overwritten.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, lat, lng *float64, workMinutes int) (Attendance, error)

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves one employee's records with filters.
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// SetStatus overwrites the status of one record. Used by the nightly
	// jobs; the request path never rewrites status after creation.
	SetStatus(ctx context.Context, id, status string) error

	// GetStaleOpenSessions returns open sessions whose clock-in is older
	// than the given number of hours. Used by the auto-close job.
	GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]Attendance, error)

	// BulkCreateAbsences inserts derived absence records, skipping any
	// (employee, date) that already has a record. Best-effort sequential;
	// a partial failure leaves the successfully inserted rows in place.
	BulkCreateAbsences(ctx context.Context, absences []Attendance) error
}
