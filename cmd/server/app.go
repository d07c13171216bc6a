package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gocontacts/contacts-api/internal/config"
	"github.com/gocontacts/contacts-api/internal/platform/postgres"
	"github.com/gocontacts/contacts-api/internal/service"
	"github.com/gocontacts/contacts-api/internal/service/auth"
	"github.com/gocontacts/contacts-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	// Service interfaces
	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.userStore = postgres.NewUserStore(db, logger)
	app.contactStore = postgres.NewContactStore(db, logger)
	app.addressStore = postgres.NewAddressStore(db, logger)

	// Initialize auth primitives
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewUUIDTokenGenerator()

	// Initialize services
	app.userService = service.NewUserService(app.userStore, hasher, hasher, tokens, db, logger)
	app.contactService = service.NewContactService(app.contactStore, logger)
	app.addressService = service.NewAddressService(app.contactStore, app.addressStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
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
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
