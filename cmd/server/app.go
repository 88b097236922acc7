package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tidytask/tidytask-api/internal/config"
	"github.com/tidytask/tidytask-api/internal/platform/postgres"
	"github.com/tidytask/tidytask-api/internal/service"
	"github.com/tidytask/tidytask-api/internal/service/auth"
	"github.com/tidytask/tidytask-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authService      service.AuthService
	userService      service.UserService
	taskService      service.TaskService
	summaryService   service.SummaryService
}

// newApplication creates a new application instance with all dependencies
// initialized. Core dependencies like configuration, logger, and database
// connection must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.authService = service.NewAuthService(app.userStore, app.jwtService, app.passwordVerifier, logger)
	app.userService = service.NewUserService(app.userStore, db, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.summaryService = service.NewSummaryService(app.taskStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
