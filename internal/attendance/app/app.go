package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/robera20/employee-attendance-management/internal/attendance/http"
	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite"
	"github.com/robera20/employee-attendance-management/pkg/cryptox"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the attendance service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	calendar *service.Calendar
	qr       *service.QRService

	// Services
	authService         *service.AuthService
	mfaService          *service.MFAService
	bootstrapService    *service.BootstrapService
	employeeService     *service.EmployeeService
	faceService         *service.FaceService
	attendanceService   *service.AttendanceService
	dashboardService    *service.DashboardService
	reportService       *service.ReportService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "attendance-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	calendar, err := service.NewCalendar(cfg.UTCOffset, cfg.LateCutoff)
	if err != nil {
		return nil, fmt.Errorf("invalid attendance calendar: %w", err)
	}
	app.calendar = calendar

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.bootstrap(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("attendance service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"utc_offset", app.cfg.UTCOffset,
		"late_cutoff", app.cfg.LateCutoff,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down attendance service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("attendance service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.qr = &service.QRService{}

	app.authService = &service.AuthService{
		Store:      app.db,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.MFAIssuer,
		QR:     app.qr,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:    app.db,
		Username: app.cfg.BootstrapUsername,
		Email:    app.cfg.BootstrapEmail,
		Password: app.cfg.BootstrapPassword,
	}
	app.employeeService = &service.EmployeeService{Store: app.db, QR: app.qr}
	app.faceService = &service.FaceService{Store: app.db}
	app.attendanceService = &service.AttendanceService{Store: app.db, Calendar: app.calendar}
	app.dashboardService = &service.DashboardService{Store: app.db, Calendar: app.calendar}
	app.reportService = &service.ReportService{Store: app.db, Calendar: app.calendar}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// bootstrap seeds the first admin when configured to
func (app *Application) bootstrap() error {
	ctx := slogx.WithContext(context.Background(), app.logger)

	created, err := app.bootstrapService.EnsureAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		app.logger.Info("bootstrap admin created")
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger, httpapi.RouterOptions{
		CookieSecure:         app.cfg.SessionCookieSecure,
		RedactInternalErrors: app.cfg.Env == "prod",
	})

	router.AuthService = app.authService
	router.MFAService = app.mfaService
	router.EmployeeService = app.employeeService
	router.FaceService = app.faceService
	router.AttendanceService = app.attendanceService
	router.DashboardService = app.dashboardService
	router.ReportService = app.reportService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
