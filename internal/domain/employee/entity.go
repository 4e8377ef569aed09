package employee

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	Email            string
	Position         *string
	Phone            *string
	EmploymentStatus string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
