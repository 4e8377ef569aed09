package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn runs the full clock-in pipeline: geofence, shift window,
	// record creation, cache invalidation.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the employee's open session for today.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetTodayAttendance returns today's record for the acting employee, or
	// nil when there is none. Served through the cache with a short TTL.
	GetTodayAttendance(ctx context.Context) (*AttendanceResponse, error)

	// GetMyAttendance retrieves attendance history for the acting employee.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/manager).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
