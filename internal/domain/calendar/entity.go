package calendar

import "time"

// Holiday is one non-working day on the company calendar.
type Holiday struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
