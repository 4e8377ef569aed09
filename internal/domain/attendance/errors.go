package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrTooEarlyToClockIn = errors.New("too early to clock in")
	ErrShiftEnded        = errors.New("shift has already ended")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// Geofence errors
	ErrGeofenceUnavailable = errors.New("geofence configuration is unavailable")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutOfRangeError is the geofence denial. It carries the measured distance
// and the configured radius so the user can self-correct.
type OutOfRangeError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are outside the allowed radius: %.0fm away, allowed %.0fm", e.DistanceMeters, e.RadiusMeters)
}
