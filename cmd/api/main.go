package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/config"
	appHTTP "github.com/workforcehq/workforce-backend-go/internal/handler/http"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cron"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
	authService "github.com/workforcehq/workforce-backend-go/internal/service/auth"
	calendarService "github.com/workforcehq/workforce-backend-go/internal/service/calendar"
	documentService "github.com/workforcehq/workforce-backend-go/internal/service/document"
	employeeService "github.com/workforcehq/workforce-backend-go/internal/service/employee"
	leaveService "github.com/workforcehq/workforce-backend-go/internal/service/leave"
	noticeService "github.com/workforcehq/workforce-backend-go/internal/service/notice"
	settingsService "github.com/workforcehq/workforce-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Invalid APP_TIMEZONE:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Cache is optional; without it every read goes straight to the
	// database and writes skip invalidation.
	var cacheStore cache.Store = cache.Disabled{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			slog.Warn("Redis unreachable at startup, continuing without it", "error", err)
		}
		defer redisCache.Close()
		cacheStore = redisCache
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, shiftRepo, settingsRepo, cacheStore, loc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, cacheStore)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, cacheStore)
	documentSvc := documentService.NewDocumentService(documentRepo, cacheStore)
	noticeSvc := noticeService.NewNoticeService(noticeRepo, cacheStore)
	calendarSvc := calendarService.NewHolidayService(holidayRepo, cacheStore)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, cacheStore)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, shiftRepo, holidayRepo, loc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Document:   appHTTP.NewDocumentHandler(documentSvc),
		Notice:     appHTTP.NewNoticeHandler(noticeSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
