// Package main implements the entry point for the TidyTask API server,
// a task management backend with per-user task lists and summary views.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tidytask/tidytask-api/internal/config"
	"github.com/tidytask/tidytask-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "Run database migrations (up, down, status, create) and exit")
	migrationName := flag.String("migration-name", "", "Name for the new migration (used with -migrate=create)")
	flag.Parse()

	if err := run(*migrateCmd, *migrationName); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires dependencies, and either executes the
// requested migration command or starts the HTTP server.
func run(migrateCmd, migrationName string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		if err := runMigrations(cfg, migrateCmd, migrationName); err != nil {
			appLogger.Error("migration failed", "command", migrateCmd, "error", err)
			os.Exit(1)
		}
		return nil
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		// The application owns db cleanup once constructed; before that,
		// close it here.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
