package attendance

import (
	"time"
)

// Attendance record statuses. A day with no record at all is "absent" by
// derivation; the clock-in path only ever writes present or late. The absent
// and half_day values are written by the nightly jobs.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusHalfDay = "half_day"
)

// Attendance is one record per employee per calendar day. Date never changes
// after creation; clock_in is set exactly once at creation and clock_out at
// most once afterwards.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	Status            string
	WorkMinutes       *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}

// IsOpen reports whether the record is a running session: clocked in, not
// yet clocked out.
func (a *Attendance) IsOpen() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
