package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/calendar"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
)

// staleSessionAgeHours is how long a session may stay open past clock-in
// before the auto-close job claims it. Longer than any shift plus the early
// buffer, so a legitimate overnight session is never closed while running.
const staleSessionAgeHours = 16

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      schedule.ShiftRepository
	holidayRepo    calendar.HolidayRepository
	loc            *time.Location

	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.ShiftRepository,
	holidayRepo calendar.HolidayRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		holidayRepo:    holidayRepo,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// AutoCloseStaleSessions closes sessions whose owner never clocked out,
// stamping the scheduled shift end as the clock-out time. A closed session
// that worked less than half its scheduled duration is downgraded to
// half_day.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	staleSessions, err := j.attendanceRepo.GetStaleOpenSessions(ctx, staleSessionAgeHours)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}
	if len(staleSessions) == 0 {
		return nil
	}

	slog.Info("Cron: Auto-closing stale sessions", "count", len(staleSessions))

	closedCount := 0
	for _, session := range staleSessions {
		shiftCfg, err := j.shiftRepo.GetForEmployee(ctx, session.EmployeeID)
		if err != nil {
			slog.Error("Cron: Failed to load shift config",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		clockOut := j.scheduledEnd(session, shiftCfg)
		workMinutes := int(clockOut.Sub(*session.ClockIn).Minutes())
		if workMinutes < 0 {
			workMinutes = 0
		}

		closed, err := j.attendanceRepo.SetClockOut(ctx, session.ID, clockOut, nil, nil, workMinutes)
		if err != nil {
			// Already closed by a racing clock-out is fine.
			slog.Warn("Cron: Skipped stale session",
				"attendance_id", session.ID,
				"error", err)
			continue
		}
		closedCount++

		if shiftCfg != nil && isHalfDay(closed, shiftCfg) {
			if err := j.attendanceRepo.SetStatus(ctx, closed.ID, attendance.StatusHalfDay); err != nil {
				slog.Error("Cron: Failed to mark half day",
					"attendance_id", closed.ID,
					"error", err)
			}
		}
	}

	slog.Info("Cron: Auto-close finished", "closed", closedCount)
	return nil
}

// MarkAbsentEmployees writes absent records for yesterday for every active
// employee with a shift who has no record at all. Runs hourly; only the
// early-morning run does work.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	nowLocal := j.now().In(j.loc)
	if nowLocal.Hour() != 2 {
		return nil
	}

	yesterday := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, j.loc).AddDate(0, 0, -1)

	holidays, err := j.holidayRepo.ListBetween(ctx, yesterday, yesterday)
	if err != nil {
		return fmt.Errorf("failed to check holidays: %w", err)
	}
	if len(holidays) > 0 {
		slog.Info("Cron: Skipping absence sweep on holiday", "date", yesterday.Format("2006-01-02"), "holiday", holidays[0].Name)
		return nil
	}
	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	var absences []attendance.Attendance
	for _, emp := range employees {
		shiftCfg, err := j.shiftRepo.GetForEmployee(ctx, emp.ID)
		if err != nil {
			slog.Error("Cron: Failed to load shift config", "employee_id", emp.ID, "error", err)
			continue
		}
		if shiftCfg == nil {
			// No shift means no expectation to show up.
			continue
		}

		record, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday.Format("2006-01-02"))
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if record != nil {
			continue
		}

		absences = append(absences, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
	}

	if len(absences) == 0 {
		return nil
	}

	if err := j.attendanceRepo.BulkCreateAbsences(ctx, absences); err != nil {
		return fmt.Errorf("failed to create absences: %w", err)
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday.Format("2006-01-02"), "count", len(absences))
	return nil
}

// scheduledEnd anchors the shift end on the session's day, pushing it past
// midnight for overnight shifts. Without a shift config the session closes
// at its own clock-in plus a standard eight hours.
func (j *AttendanceJobs) scheduledEnd(session attendance.Attendance, shiftCfg *schedule.ShiftConfig) time.Time {
	if shiftCfg == nil {
		return session.ClockIn.Add(8 * time.Hour)
	}

	dayLocal := session.Date.In(j.loc)
	end := shiftCfg.ShiftEnd.At(dayLocal)
	if shiftCfg.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}

	endUTC := end.UTC()
	if endUTC.Before(*session.ClockIn) {
		// Clock-in after the scheduled end (an early overnight start the
		// day before, or clock skew). Close at the clock-in itself.
		return *session.ClockIn
	}
	return endUTC
}

func isHalfDay(closed attendance.Attendance, shiftCfg *schedule.ShiftConfig) bool {
	if closed.WorkMinutes == nil {
		return false
	}

	startMins := shiftCfg.ShiftStart.Hour*60 + shiftCfg.ShiftStart.Minute
	endMins := shiftCfg.ShiftEnd.Hour*60 + shiftCfg.ShiftEnd.Minute
	scheduled := endMins - startMins
	if scheduled <= 0 {
		scheduled += 24 * 60
	}

	return *closed.WorkMinutes*2 < scheduled
}
