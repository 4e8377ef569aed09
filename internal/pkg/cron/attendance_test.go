package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/calendar"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository

	stale       []attendance.Attendance
	records     map[string]*attendance.Attendance
	byDay       map[string]*attendance.Attendance
	absences    []attendance.Attendance
	statusByID  map[string]string
	closeErrors map[string]error
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{
		records:     make(map[string]*attendance.Attendance),
		byDay:       make(map[string]*attendance.Attendance),
		statusByID:  make(map[string]string),
		closeErrors: make(map[string]error),
	}
}

func (s *stubAttendanceRepo) GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]attendance.Attendance, error) {
	return s.stale, nil
}

func (s *stubAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, lat, lng *float64, workMinutes int) (attendance.Attendance, error) {
	if err := s.closeErrors[id]; err != nil {
		return attendance.Attendance{}, err
	}
	rec := s.records[id]
	rec.ClockOut = &clockOut
	rec.WorkMinutes = &workMinutes
	return *rec, nil
}

func (s *stubAttendanceRepo) SetStatus(ctx context.Context, id, status string) error {
	s.statusByID[id] = status
	return nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	return s.byDay[employeeID+"|"+date], nil
}

func (s *stubAttendanceRepo) BulkCreateAbsences(ctx context.Context, absences []attendance.Attendance) error {
	s.absences = append(s.absences, absences...)
	return nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.active, nil
}

type stubShiftRepo struct {
	byEmployee map[string]*schedule.ShiftConfig
}

func (s *stubShiftRepo) GetForEmployee(ctx context.Context, employeeID string) (*schedule.ShiftConfig, error) {
	return s.byEmployee[employeeID], nil
}

type stubHolidayRepo struct {
	holidays []calendar.Holiday
}

func (s *stubHolidayRepo) ListBetween(ctx context.Context, start, end time.Time) ([]calendar.Holiday, error) {
	return s.holidays, nil
}

func dayShift() *schedule.ShiftConfig {
	return &schedule.ShiftConfig{
		ShiftStart: schedule.TimeOfDay{Hour: 9},
		ShiftEnd:   schedule.TimeOfDay{Hour: 17},
	}
}

func openSession(id, employeeID string, date time.Time, clockIn time.Time) *attendance.Attendance {
	return &attendance.Attendance{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clockIn,
		Status:     attendance.StatusPresent,
	}
}

func newJobs(att *stubAttendanceRepo, emp *stubEmployeeRepo, shift *stubShiftRepo, hol *stubHolidayRepo) *AttendanceJobs {
	return NewAttendanceJobs(att, emp, shift, hol, time.UTC)
}

func TestAutoCloseStaleSessions_ClosesAtScheduledEnd(t *testing.T) {
	att := newStubAttendanceRepo()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	session := openSession("att-1", "emp-1", date, date.Add(9*time.Hour))
	att.records["att-1"] = session
	att.stale = []attendance.Attendance{*session}

	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-1": dayShift()}}
	jobs := newJobs(att, &stubEmployeeRepo{}, shift, &stubHolidayRepo{})

	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))

	require.NotNil(t, session.ClockOut)
	assert.True(t, session.ClockOut.Equal(date.Add(17*time.Hour)), "clock-out must land on the scheduled shift end")
	require.NotNil(t, session.WorkMinutes)
	assert.Equal(t, 480, *session.WorkMinutes)
	assert.Empty(t, att.statusByID["att-1"], "a full stale day keeps its status")
}

func TestAutoCloseStaleSessions_ShortSessionBecomesHalfDay(t *testing.T) {
	att := newStubAttendanceRepo()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	// Clocked in two hours before the end of an eight hour shift.
	session := openSession("att-1", "emp-1", date, date.Add(15*time.Hour))
	att.records["att-1"] = session
	att.stale = []attendance.Attendance{*session}

	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-1": dayShift()}}
	jobs := newJobs(att, &stubEmployeeRepo{}, shift, &stubHolidayRepo{})

	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))

	assert.Equal(t, attendance.StatusHalfDay, att.statusByID["att-1"])
}

func TestAutoCloseStaleSessions_OvernightShiftEndsNextDay(t *testing.T) {
	att := newStubAttendanceRepo()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	session := openSession("att-1", "emp-1", date, date.Add(22*time.Hour))
	att.records["att-1"] = session
	att.stale = []attendance.Attendance{*session}

	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{
		"emp-1": {
			ShiftStart: schedule.TimeOfDay{Hour: 22},
			ShiftEnd:   schedule.TimeOfDay{Hour: 6},
		},
	}}
	jobs := newJobs(att, &stubEmployeeRepo{}, shift, &stubHolidayRepo{})

	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))

	require.NotNil(t, session.ClockOut)
	assert.True(t, session.ClockOut.Equal(date.AddDate(0, 0, 1).Add(6*time.Hour)))
	assert.Equal(t, 480, *session.WorkMinutes)
}

func TestAutoCloseStaleSessions_RacingClockOutTolerated(t *testing.T) {
	att := newStubAttendanceRepo()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	session := openSession("att-1", "emp-1", date, date.Add(9*time.Hour))
	att.records["att-1"] = session
	att.stale = []attendance.Attendance{*session}
	att.closeErrors["att-1"] = attendance.ErrAlreadyClockedOut

	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-1": dayShift()}}
	jobs := newJobs(att, &stubEmployeeRepo{}, shift, &stubHolidayRepo{})

	assert.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))
}

func TestMarkAbsentEmployees_WritesMissingRecords(t *testing.T) {
	att := newStubAttendanceRepo()
	// Tuesday 2025-06-17 02:00, sweeping Monday 2025-06-16.
	nowLocal := time.Date(2025, 6, 17, 2, 30, 0, 0, time.UTC)

	emp := &stubEmployeeRepo{active: []employee.Employee{
		{ID: "emp-present", FullName: "Was Here"},
		{ID: "emp-missing", FullName: "No Show"},
		{ID: "emp-no-shift", FullName: "Unscheduled"},
	}}
	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{
		"emp-present": dayShift(),
		"emp-missing": dayShift(),
	}}
	att.byDay["emp-present|2025-06-16"] = &attendance.Attendance{ID: "att-1", Status: attendance.StatusPresent}

	jobs := newJobs(att, emp, shift, &stubHolidayRepo{})
	jobs.now = func() time.Time { return nowLocal }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	require.Len(t, att.absences, 1)
	assert.Equal(t, "emp-missing", att.absences[0].EmployeeID)
	assert.Equal(t, "2025-06-16", att.absences[0].Date.Format("2006-01-02"))
}

func TestMarkAbsentEmployees_SkipsOutsideRunWindow(t *testing.T) {
	att := newStubAttendanceRepo()
	emp := &stubEmployeeRepo{active: []employee.Employee{{ID: "emp-missing"}}}
	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-missing": dayShift()}}

	jobs := newJobs(att, emp, shift, &stubHolidayRepo{})
	jobs.now = func() time.Time { return time.Date(2025, 6, 17, 14, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, att.absences)
}

func TestMarkAbsentEmployees_SkipsHolidays(t *testing.T) {
	att := newStubAttendanceRepo()
	emp := &stubEmployeeRepo{active: []employee.Employee{{ID: "emp-missing"}}}
	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-missing": dayShift()}}
	hol := &stubHolidayRepo{holidays: []calendar.Holiday{{ID: "h1", Name: "Founders Day"}}}

	jobs := newJobs(att, emp, shift, hol)
	jobs.now = func() time.Time { return time.Date(2025, 6, 17, 2, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, att.absences)
}

func TestMarkAbsentEmployees_SkipsWeekends(t *testing.T) {
	att := newStubAttendanceRepo()
	emp := &stubEmployeeRepo{active: []employee.Employee{{ID: "emp-missing"}}}
	shift := &stubShiftRepo{byEmployee: map[string]*schedule.ShiftConfig{"emp-missing": dayShift()}}

	jobs := newJobs(att, emp, shift, &stubHolidayRepo{})
	// Sunday 02:00, sweeping Saturday.
	jobs.now = func() time.Time { return time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, att.absences)
}
