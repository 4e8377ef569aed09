package postgresqltest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
)

func seedLeave(employeeID string, start, end time.Time) leave.LeaveRequest {
	reason := "trip"
	return leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "annual",
		StartDate:  start,
		EndDate:    end,
		Reason:     &reason,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveRepository_ExistsOverlapping(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db, "leave_requests")
	repo := postgresql.NewLeaveRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, seedLeave("emp-1", day(10), day(12)))
	require.NoError(t, err)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", day(11), day(11), true},
		{"spanning", day(9), day(13), true},
		{"touching start", day(8), day(10), true},
		{"touching end", day(12), day(14), true},
		{"before", day(7), day(9), false},
		{"after", day(13), day(15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsOverlapping(ctx, "emp-1", tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := repo.ExistsOverlapping(ctx, "emp-2", day(11), day(11))
	require.NoError(t, err)
	assert.False(t, got, "other employees are unaffected")
}

func TestLeaveRepository_ExistsOverlapping_IgnoresRejected(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db, "leave_requests")
	repo := postgresql.NewLeaveRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, seedLeave("emp-1", day(10), day(12)))
	require.NoError(t, err)
	_, err = repo.SetStatus(ctx, created.ID, leave.StatusRejected, "mgr-1", time.Now())
	require.NoError(t, err)

	got, err := repo.ExistsOverlapping(ctx, "emp-1", day(11), day(11))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestLeaveRepository_ExistsOverlapping_UnboundedByHistory(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db, "leave_requests")
	repo := postgresql.NewLeaveRepository(db)
	ctx := context.Background()

	// A long pending backlog must not push the conflicting request out of
	// reach of the check.
	for i := 0; i < 150; i++ {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*3)
		_, err := repo.Create(ctx, seedLeave("emp-1", start, start.AddDate(0, 0, 1)))
		require.NoError(t, err, fmt.Sprintf("seed %d", i))
	}
	_, err := repo.Create(ctx, seedLeave("emp-1", day(10), day(12)))
	require.NoError(t, err)

	got, err := repo.ExistsOverlapping(ctx, "emp-1", day(11), day(11))
	require.NoError(t, err)
	assert.True(t, got)
}
