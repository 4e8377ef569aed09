package notice

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateNoticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListNoticesResponse struct {
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	Notices    []Notice `json:"notices"`
}
