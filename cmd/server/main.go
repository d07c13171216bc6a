// Package main implements the entry point for the contacts API server,
// a REST service for managing per-user contacts and their addresses.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/gocontacts/contacts-api/internal/config"
	"github.com/gocontacts/contacts-api/internal/platform/logger"
)

// main initializes configuration, logging, the database connection and the
// application dependencies, runs pending migrations and starts the HTTP
// server.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := runMigrations(db, cfg, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		appLogger.Error("Server error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the root logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, appLogger, nil
}
