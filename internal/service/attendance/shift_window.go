package attendance

import (
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
)

// ClockDecision is the outcome of evaluating a clock-in against the shift
// window.
type ClockDecision int

const (
	PermitOnTime ClockDecision = iota
	PermitLate
	DenyTooEarly
	DenyShiftEnded
)

const (
	// earlyClockInBuffer is how long before shift start a clock-in is
	// accepted at all.
	earlyClockInBuffer = 2 * time.Hour
	// lateGracePeriod is how long after shift start a clock-in still counts
	// as on time.
	lateGracePeriod = 15 * time.Minute
)

// EvaluateShiftWindow decides whether a clock-in at now is on time, late, or
// denied, for a shift running from start to end. An end earlier than start
// marks an overnight shift.
//
// On the overnight path, any clock-in between midnight and shift end is
// treated as a continuation of the previous night's shift and is always
// late: the shift started before midnight, so the grace window is long gone.
func EvaluateShiftWindow(now time.Time, start, end schedule.TimeOfDay) ClockDecision {
	startTime := start.At(now)
	endTime := end.At(now)
	earlyBuffer := startTime.Add(-earlyClockInBuffer)
	graceTime := startTime.Add(lateGracePeriod)

	if endTime.Before(startTime) {
		// Overnight shift.
		switch {
		case !now.Before(startTime):
			if now.After(graceTime) {
				return PermitLate
			}
			return PermitOnTime
		case !now.After(endTime):
			// Continuation of the previous night's shift.
			return PermitLate
		case now.Before(earlyBuffer):
			return DenyTooEarly
		default:
			// Inside the pre-shift buffer.
			return PermitOnTime
		}
	}

	// Same-day shift.
	if now.Before(earlyBuffer) {
		return DenyTooEarly
	}
	if now.After(endTime) {
		return DenyShiftEnded
	}
	if now.After(graceTime) {
		return PermitLate
	}
	return PermitOnTime
}
