package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/document"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/domain/user"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A geofence denial carries the measured distance.
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		Error(w, http.StatusForbidden, "OUT_OF_RANGE", outOfRange.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrNoActor):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrNoEmployee):
		Forbidden(w, "No employee profile linked to this account")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Error(w, http.StatusConflict, "ALREADY_CLOCKED_IN", "Already clocked in today")
	case errors.Is(err, attendance.ErrTooEarlyToClockIn):
		Error(w, http.StatusForbidden, "TOO_EARLY", err.Error())
	case errors.Is(err, attendance.ErrShiftEnded):
		Error(w, http.StatusForbidden, "SHIFT_ENDED", err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		Error(w, http.StatusNotFound, "NO_OPEN_RECORD", "No open attendance record to clock out of")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Error(w, http.StatusConflict, "ALREADY_CLOCKED_OUT", "Attendance record is already closed")
	case errors.Is(err, attendance.ErrGeofenceUnavailable):
		Error(w, http.StatusServiceUnavailable, "CONFIG_UNAVAILABLE", "Location policy is temporarily unavailable, try again shortly")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrPolicyNotFound):
		NotFound(w, "Policy not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
