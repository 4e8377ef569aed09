package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with no date component, as stored in shift
// configuration ("HH:MM").
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// At anchors the time-of-day on the calendar day of ref, in ref's location.
func (t TimeOfDay) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, ref.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ShiftConfig is the shift window for one employee, or the company-wide
// default when EmployeeID is nil. ShiftEnd earlier than ShiftStart signals a
// shift that crosses midnight. Externally managed, read-only here.
type ShiftConfig struct {
	ID         string
	EmployeeID *string
	ShiftStart TimeOfDay
	ShiftEnd   TimeOfDay
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOvernight reports whether the shift crosses midnight.
func (s *ShiftConfig) IsOvernight() bool {
	end := s.ShiftEnd.Hour*60 + s.ShiftEnd.Minute
	start := s.ShiftStart.Hour*60 + s.ShiftStart.Minute
	return end < start
}
