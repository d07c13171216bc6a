package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/gocontacts/contacts-api/internal/config"
)

// runMigrations applies any pending SQL migrations from the configured
// directory before the server starts serving traffic.
func runMigrations(db *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	goose.SetLogger(&gooseLogger{logger: logger.With(slog.String("component", "migrations"))})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied", "dir", cfg.Database.MigrationsDir)
	return nil
}

// gooseLogger adapts slog to the goose.Logger interface.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
