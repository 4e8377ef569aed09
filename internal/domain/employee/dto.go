package employee

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Position         *string `json:"position,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
