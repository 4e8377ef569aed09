package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type fakeLeaveRepo struct {
	leave.LeaveRepository

	seq      int
	requests []leave.LeaveRequest

	overlapErr error
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("leave-%d", f.seq)
	req.Status = leave.StatusPending
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) ExistsOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	if f.overlapErr != nil {
		return false, f.overlapErr
	}
	for _, lr := range f.requests {
		if lr.EmployeeID != employeeID {
			continue
		}
		if lr.Status != leave.StatusPending && lr.Status != leave.StatusApproved {
			continue
		}
		if !start.After(lr.EndDate) && !end.Before(lr.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        "employee",
		"type":        "access",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func leaveFixture() (*LeaveServiceImpl, *fakeLeaveRepo) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, cache.Disabled{}).(*LeaveServiceImpl)
	return svc, repo
}

func createRequest(start, end string) leave.CreateLeaveRequest {
	reason := "trip"
	return leave.CreateLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    &reason,
	}
}

func TestCreateLeave_RejectsOverlap(t *testing.T) {
	svc, _ := leaveFixture()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.Create(ctx, createRequest("2025-06-10", "2025-06-12"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("2025-06-12", "2025-06-14"))
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeave_RejectsOverlapRegardlessOfBacklogSize(t *testing.T) {
	svc, repo := leaveFixture()
	ctx := employeeContext(t, "emp-1")

	for i := 0; i < 150; i++ {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*3)
		repo.requests = append(repo.requests, leave.LeaveRequest{
			ID:         fmt.Sprintf("old-%d", i),
			EmployeeID: "emp-1",
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 1),
			Status:     leave.StatusPending,
		})
	}
	repo.requests = append(repo.requests, leave.LeaveRequest{
		ID:         "conflict",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	})

	_, err := svc.Create(ctx, createRequest("2025-06-11", "2025-06-11"))
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeave_AllowsDisjointRanges(t *testing.T) {
	svc, repo := leaveFixture()
	ctx := employeeContext(t, "emp-1")

	_, err := svc.Create(ctx, createRequest("2025-06-10", "2025-06-12"))
	require.NoError(t, err)

	resp, err := svc.Create(ctx, createRequest("2025-06-16", "2025-06-18"))
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Len(t, repo.requests, 2)
}

func TestCreateLeave_OverlapCheckFailureBlocksCreate(t *testing.T) {
	svc, repo := leaveFixture()
	repo.overlapErr = fmt.Errorf("connection refused")
	ctx := employeeContext(t, "emp-1")

	_, err := svc.Create(ctx, createRequest("2025-06-10", "2025-06-12"))
	require.Error(t, err)
	assert.Empty(t, repo.requests)
}
