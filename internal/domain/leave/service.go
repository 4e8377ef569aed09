package leave

import "context"

type LeaveService interface {
	// Create files a leave request for the acting employee.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// List returns leave requests (admin/manager), through the cache.
	List(ctx context.Context, filter LeaveFilter) (ListLeavesResponse, error)

	// ListMine returns the acting employee's requests, through the cache.
	ListMine(ctx context.Context, filter LeaveFilter) (ListLeavesResponse, error)

	// Approve and Reject review a pending request (manager).
	Approve(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)
}
