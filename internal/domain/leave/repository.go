package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// Create inserts a pending leave request.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns one leave request.
	// Returns ErrLeaveRequestNotFound when absent.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns leave requests matching the filter plus a total count.
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// ExistsOverlapping reports whether the employee already has a pending
	// or approved request whose date range intersects [start, end].
	ExistsOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// SetStatus moves a pending request to approved/rejected. Returns
	// ErrLeaveRequestAlreadyProcessed when the request is no longer pending.
	SetStatus(ctx context.Context, id, status, reviewerID string, reviewedAt time.Time) (LeaveRequest, error)
}
