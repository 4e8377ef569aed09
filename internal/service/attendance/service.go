package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	shiftRepo    schedule.ShiftRepository
	settingsRepo settings.SettingsRepository
	cache        cache.Store
	loc          *time.Location

	// now is swapped in tests; everything time-dependent goes through it.
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo schedule.ShiftRepository,
	settingsRepo settings.SettingsRepository,
	cacheStore cache.Store,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		shiftRepo:            shiftRepo,
		settingsRepo:         settingsRepo,
		cache:                cacheStore,
		loc:                  loc,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	nowLocal := nowUTC.In(a.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	if err := a.checkGeofence(ctx, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Without a shift config the window check is skipped entirely and the
	// clock-in counts as on time.
	status := attendance.StatusPresent
	shiftCfg, err := a.shiftRepo.GetForEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift config: %w", err)
	}
	if shiftCfg != nil {
		switch EvaluateShiftWindow(nowLocal, shiftCfg.ShiftStart, shiftCfg.ShiftEnd) {
		case DenyTooEarly:
			return attendance.AttendanceResponse{}, fmt.Errorf("%w: shift starts at %s", attendance.ErrTooEarlyToClockIn, shiftCfg.ShiftStart)
		case DenyShiftEnded:
			return attendance.AttendanceResponse{}, fmt.Errorf("%w: shift ran %s to %s", attendance.ErrShiftEnded, shiftCfg.ShiftStart, shiftCfg.ShiftEnd)
		case PermitLate:
			status = attendance.StatusLate
		}
	}

	data := attendance.Attendance{
		EmployeeID:       actor.EmployeeID,
		Date:             time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, a.loc),
		ClockIn:          &nowUTC,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Status:           status,
	}

	// The store's unique constraint on (employee_id, date) is the only
	// defense against two concurrent clock-ins; no prior read is trusted.
	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	cache.Invalidate(ctx, a.cache, cache.TodayAttendanceKey(actor.EmployeeID, dateLocal))

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := a.AttendanceRepository.GetOpenSession(ctx, actor.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	if err := a.checkGeofence(ctx, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	workMinutes := int(nowUTC.Sub(*open.ClockIn).Minutes())

	updated, err := a.AttendanceRepository.SetClockOut(ctx, open.ID, nowUTC, req.Latitude, req.Longitude, workMinutes)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedOut) || errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	cache.Invalidate(ctx, a.cache, cache.TodayAttendanceKey(actor.EmployeeID, updated.Date.Format("2006-01-02")))

	return mapAttendanceToResponse(updated), nil
}

// GetTodayAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayAttendance(ctx context.Context) (*attendance.AttendanceResponse, error) {
	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return nil, err
	}

	dateLocal := a.now().UTC().In(a.loc).Format("2006-01-02")
	key := cache.TodayAttendanceKey(actor.EmployeeID, dateLocal)

	record, err := cache.GetOrLoad(ctx, a.cache, key, cache.TTLTodayAttendance, func(ctx context.Context) (*attendance.Attendance, error) {
		return a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, dateLocal)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := mapAttendanceToResponse(*record)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	actor, err := auth.RequireEmployee(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	normalizePagination(&filter.Page, &filter.Limit)

	attendances, total, err := a.AttendanceRepository.ListByEmployee(ctx, actor.EmployeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	normalizePagination(&filter.Page, &filter.Limit)

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

func normalizePagination(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 {
		*limit = 20
	}
}

func buildListResponse(attendances []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		Attendances: responses,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var totalHours *float64
	if att.WorkMinutes != nil {
		hours := float64(*att.WorkMinutes) / 60.0
		totalHours = &hours
	}

	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      att.EmployeeName,
		Date:              att.Date.Format("2006-01-02"),
		ClockInTime:       timePtrToString(att.ClockIn),
		ClockOutTime:      timePtrToString(att.ClockOut),
		ClockInLatitude:   att.ClockInLatitude,
		ClockInLongitude:  att.ClockInLongitude,
		ClockOutLatitude:  att.ClockOutLatitude,
		ClockOutLongitude: att.ClockOutLongitude,
		Status:            att.Status,
		TotalHours:        totalHours,
	}
}
