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

	httpapi "github.com/dayflowhq/dayflow/internal/hr/http"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/internal/hr/sessionstore"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/internal/hr/store/drivers/sqlite"
	"github.com/dayflowhq/dayflow/pkg/cryptox"
	"github.com/dayflowhq/dayflow/pkg/jwtx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the HR service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	sessions *sessionstore.FileStore

	// Services
	directoryService  *service.DirectoryService
	attendanceService *service.AttendanceService
	leaveService      *service.LeaveService
	payrollService    *service.PayrollService
	statsService      *service.StatsService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "hr-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	sessions, err := sessionstore.NewFileStore(app.cfg.SessionFile)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	app.sessions = sessions

	// Session token keys are ephemeral; the session blob is what persists.
	signer, verifier, keys, err := InitSessionKeys(app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	app.initServices(signer)

	if app.cfg.SeedDemo {
		if err := app.directoryService.SeedDemoDirectory(context.Background()); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed demo directory: %w", err)
		}
	}

	app.initHTTP(verifier, keys)

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("hr service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down hr service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("hr service stopped")
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
func (app *Application) initServices(signer jwtx.Signer) {
	app.directoryService = service.NewDirectoryService(
		app.db,
		app.sessions,
		signer,
		app.cfg.Issuer,
		app.cfg.SessionTTL,
	)

	app.attendanceService = &service.AttendanceService{Store: app.db}
	app.leaveService = &service.LeaveService{Store: app.db}
	app.payrollService = &service.PayrollService{}
	app.statsService = &service.StatsService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP(verifier jwtx.Verifier, keys *jwtx.KeySet) {
	router := httpapi.NewRouter(
		keys,
		verifier,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.DirectoryService = app.directoryService
	router.AttendanceService = app.attendanceService
	router.LeaveService = app.leaveService
	router.PayrollService = app.payrollService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
