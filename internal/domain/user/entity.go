package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages settings and directory
	RoleManager  Role = "manager"  // Can approve leave and view attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks for full administrative access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks for manager-or-above access.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
