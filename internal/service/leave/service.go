package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type LeaveServiceImpl struct {
	repo  leave.LeaveRepository
	cache cache.Store
	now   func() time.Time
}

func NewLeaveService(repo leave.LeaveRepository, cacheStore cache.Store) leave.LeaveService {
	return &LeaveServiceImpl{
		repo:  repo,
		cache: cacheStore,
		now:   time.Now,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	// Overlap with an approved or pending request is rejected before
	// filing. A race between two overlapping submissions is tolerated;
	// review catches it.
	overlaps, err := s.repo.ExistsOverlapping(ctx, actor.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check existing leave: %w", err)
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: actor.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.invalidateLists(ctx, actor.EmployeeID)

	return mapLeaveToResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error) {
	normalize(&filter)
	return s.listCached(ctx, filter)
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error) {
	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	filter.EmployeeID = &actor.EmployeeID
	normalize(&filter)
	return s.listCached(ctx, filter)
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequest, status string) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.repo.SetStatus(ctx, req.ID, status, actor.UserID, s.now())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) || errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to review leave request: %w", err)
	}

	s.invalidateLists(ctx, updated.EmployeeID)

	return mapLeaveToResponse(updated), nil
}

func (s *LeaveServiceImpl) listCached(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error) {
	employeeID, status := "", ""
	if filter.EmployeeID != nil {
		employeeID = *filter.EmployeeID
	}
	if filter.Status != nil {
		status = *filter.Status
	}

	key := cache.LeaveRequestsKey(employeeID, status, filter.Page, filter.Limit)
	resp, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLLeaveRequests, func(ctx context.Context) (leave.ListLeavesResponse, error) {
		requests, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return leave.ListLeavesResponse{}, err
		}

		responses := make([]leave.LeaveResponse, 0, len(requests))
		for _, lr := range requests {
			responses = append(responses, mapLeaveToResponse(lr))
		}
		return leave.ListLeavesResponse{
			TotalCount: total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			Leaves:     responses,
		}, nil
	})
	if err != nil {
		return leave.ListLeavesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return resp, nil
}

// invalidateLists drops the first page of the employee's and the global
// pending views; other pages age out with the short list TTL.
func (s *LeaveServiceImpl) invalidateLists(ctx context.Context, employeeID string) {
	cache.Invalidate(ctx, s.cache,
		cache.LeaveRequestsKey(employeeID, "", 1, 20),
		cache.LeaveRequestsKey(employeeID, leave.StatusPending, 1, 20),
		cache.LeaveRequestsKey("", "", 1, 20),
		cache.LeaveRequestsKey("", leave.StatusPending, 1, 20),
	)
}

func normalize(filter *leave.LeaveFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
}

func mapLeaveToResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		LeaveType:    lr.LeaveType,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Reason:       lr.Reason,
		Status:       lr.Status,
	}
}
