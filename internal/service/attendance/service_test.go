package attendance

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

// ===== test doubles =====

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]*attendance.Attendance
	byDay   map[string]string
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]*attendance.Attendance),
		byDay:   make(map[string]string),
	}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := dayKey(att.EmployeeID, att.Date)
	if _, exists := f.byDay[key]; exists {
		// The store constraint, not a prior read, rejects the duplicate.
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}

	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	stored := att
	f.records[att.ID] = &stored
	f.byDay[key] = att.ID
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.byDay[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	rec := *f.records[id]
	return &rec, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.IsOpen() {
			return *rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNotClockedIn
}

func (f *fakeAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, lat, lng *float64, workMinutes int) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if rec.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	rec.ClockOut = &clockOut
	rec.ClockOutLatitude = lat
	rec.ClockOutLongitude = lng
	rec.WorkMinutes = &workMinutes
	return *rec, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.Attendance
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) SetStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.Status = status
	return nil
}

func (f *fakeAttendanceRepo) GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cutoff := time.Now().UTC().Add(-time.Duration(olderThanHours) * time.Hour)
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.IsOpen() && rec.ClockIn.Before(cutoff) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) BulkCreateAbsences(ctx context.Context, absences []attendance.Attendance) error {
	return nil
}

type fakeShiftRepo struct {
	cfg *schedule.ShiftConfig
	err error
}

func (f *fakeShiftRepo) GetForEmployee(ctx context.Context, employeeID string) (*schedule.ShiftConfig, error) {
	return f.cfg, f.err
}

type fakeSettingsRepo struct {
	geofence *settings.GeofenceConfig
	err      error
}

func (f *fakeSettingsRepo) GetGeofence(ctx context.Context) (*settings.GeofenceConfig, error) {
	return f.geofence, f.err
}

func (f *fakeSettingsRepo) UpsertGeofence(ctx context.Context, cfg settings.GeofenceConfig) (settings.GeofenceConfig, error) {
	f.geofence = &cfg
	return cfg, nil
}

func (f *fakeSettingsRepo) GetPolicy(ctx context.Context, key string) (settings.CompanyPolicy, error) {
	return settings.CompanyPolicy{}, settings.ErrPolicyNotFound
}

// ===== helpers =====

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

type serviceFixture struct {
	svc      *AttendanceServiceImpl
	repo     *fakeAttendanceRepo
	shift    *fakeShiftRepo
	settings *fakeSettingsRepo
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := newFakeAttendanceRepo()
	shift := &fakeShiftRepo{}
	st := &fakeSettingsRepo{}
	svc := NewAttendanceService(nil, repo, shift, st, cache.Disabled{}, time.UTC).(*AttendanceServiceImpl)
	return &serviceFixture{svc: svc, repo: repo, shift: shift, settings: st}
}

func (fx *serviceFixture) setNow(t time.Time) {
	fx.svc.now = func() time.Time { return t }
}

func ptr(f float64) *float64 { return &f }

// ===== clock-in =====

func TestClockIn_NoShiftConfigIsPresent(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 3, 0, 0, 0, time.UTC)) // any hour works without a shift
	ctx := employeeContext(t, "emp-1")

	got, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, got.Status)
	assert.Equal(t, "2025-06-16", got.Date)
	require.NotNil(t, got.ClockInTime)
}

func TestClockIn_WithinGraceIsPresent(t *testing.T) {
	fx := newServiceFixture(t)
	fx.shift.cfg = &schedule.ShiftConfig{
		ShiftStart: schedule.TimeOfDay{Hour: 9},
		ShiftEnd:   schedule.TimeOfDay{Hour: 17},
	}
	fx.setNow(time.Date(2025, 6, 16, 9, 10, 0, 0, time.UTC))

	got, err := fx.svc.ClockIn(employeeContext(t, "emp-1"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, got.Status)
}

func TestClockIn_PastGraceIsLate(t *testing.T) {
	fx := newServiceFixture(t)
	fx.shift.cfg = &schedule.ShiftConfig{
		ShiftStart: schedule.TimeOfDay{Hour: 9},
		ShiftEnd:   schedule.TimeOfDay{Hour: 17},
	}
	fx.setNow(time.Date(2025, 6, 16, 9, 20, 0, 0, time.UTC))

	got, err := fx.svc.ClockIn(employeeContext(t, "emp-1"), attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, got.Status)
}

func TestClockIn_TooEarlyIsDeniedWithBoundary(t *testing.T) {
	fx := newServiceFixture(t)
	fx.shift.cfg = &schedule.ShiftConfig{
		ShiftStart: schedule.TimeOfDay{Hour: 9},
		ShiftEnd:   schedule.TimeOfDay{Hour: 17},
	}
	fx.setNow(time.Date(2025, 6, 16, 6, 0, 0, 0, time.UTC))

	_, err := fx.svc.ClockIn(employeeContext(t, "emp-1"), attendance.ClockInRequest{})
	require.ErrorIs(t, err, attendance.ErrTooEarlyToClockIn)
	assert.Contains(t, err.Error(), "09:00", "denial must name the shift boundary")

	// A denial never writes a record.
	rec, repoErr := fx.repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2025-06-16")
	require.NoError(t, repoErr)
	assert.Nil(t, rec)
}

func TestClockIn_AfterShiftEndIsDenied(t *testing.T) {
	fx := newServiceFixture(t)
	fx.shift.cfg = &schedule.ShiftConfig{
		ShiftStart: schedule.TimeOfDay{Hour: 9},
		ShiftEnd:   schedule.TimeOfDay{Hour: 17},
	}
	fx.setNow(time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC))

	_, err := fx.svc.ClockIn(employeeContext(t, "emp-1"), attendance.ClockInRequest{})
	require.ErrorIs(t, err, attendance.ErrShiftEnded)
}

func TestClockIn_DuplicateSameDayRejected(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	ctx := employeeContext(t, "emp-1")

	_, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	_, err = fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_ConcurrentAttemptsExactlyOneWins(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	ctx := employeeContext(t, "emp-1")

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestClockIn_InvalidLatitudeRejected(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))

	_, err := fx.svc.ClockIn(employeeContext(t, "emp-1"), attendance.ClockInRequest{
		Latitude:  ptr(120),
		Longitude: ptr(72.8777),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

// ===== clock-out =====

func TestClockOut_ClosesOpenSession(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := employeeContext(t, "emp-1")

	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	_, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	fx.setNow(time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC))
	got, err := fx.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)
	require.NotNil(t, got.ClockOutTime)
	require.NotNil(t, got.TotalHours)
	assert.InDelta(t, 8.5, *got.TotalHours, 0.01)
}

func TestClockOut_WithoutOpenSessionRejected(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 17, 0, 0, 0, time.UTC))

	_, err := fx.svc.ClockOut(employeeContext(t, "emp-1"), attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_SecondAttemptLeavesRecordUntouched(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := employeeContext(t, "emp-1")

	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))
	created, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	fx.setNow(time.Date(2025, 6, 16, 17, 0, 0, 0, time.UTC))
	first, err := fx.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	require.NoError(t, err)

	// Sequential retry: the session is closed, so there is no open record.
	fx.setNow(time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC))
	_, err = fx.svc.ClockOut(ctx, attendance.ClockOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)

	// Racing retry against the same record id: rejected as already clocked
	// out, and the stored timestamp is unchanged.
	_, err = fx.repo.SetClockOut(context.Background(), created.ID, time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC), nil, nil, 0)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)

	stored, err := fx.repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2025-06-16")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *first.ClockOutTime, stored.ClockOut.Format("2006-01-02 15:04:05"))
}

// ===== read path =====

func TestGetTodayAttendance_NilWhenNoRecord(t *testing.T) {
	fx := newServiceFixture(t)
	fx.setNow(time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC))

	got, err := fx.svc.GetTodayAttendance(employeeContext(t, "emp-1"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetTodayAttendance_ObservesClockIn(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := employeeContext(t, "emp-1")
	fx.setNow(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC))

	_, err := fx.svc.ClockIn(ctx, attendance.ClockInRequest{})
	require.NoError(t, err)

	got, err := fx.svc.GetTodayAttendance(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, attendance.StatusPresent, got.Status)
}
