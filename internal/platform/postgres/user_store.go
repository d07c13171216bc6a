package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/platform/logger"
	"github.com/gocontacts/contacts-api/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of store.UserStore.
// The database handle is initialized and managed by the caller.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Returns store.ErrUsernameExists when the username is already registered.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	query := `
		INSERT INTO users (username, password, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.HashedPassword,
		user.Name,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("username already registered",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	log.Info("user created successfully",
		slog.String("username", user.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, password, name, token, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return s.scanUser(ctx, log, query, username)
}

// GetByToken implements store.UserStore.GetByToken.
func (s *UserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, password, name, token, created_at, updated_at
		FROM users
		WHERE token = $1
	`
	return s.scanUser(ctx, log, query, token)
}

func (s *UserStore) scanUser(
	ctx context.Context,
	log *slog.Logger,
	query string,
	arg any,
) (*domain.User, error) {
	var user domain.User
	var token sql.NullString

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.Username,
		&user.HashedPassword,
		&user.Name,
		&token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, err
	}

	user.Token = token.String
	return &user, nil
}

// Update implements store.UserStore.Update.
// It overwrites the name and hashed password of an existing user.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET password = $1, name = $2, updated_at = $3
		WHERE username = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.HashedPassword,
		user.Name,
		user.UpdatedAt,
		user.Username,
	)

	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	return s.checkAffected(log, result, "update", user.Username)
}

// UpdateToken implements store.UserStore.UpdateToken.
func (s *UserStore) UpdateToken(ctx context.Context, username, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET token = $1, updated_at = $2
		WHERE username = $3
	`
	result, err := s.db.ExecContext(ctx, query, token, time.Now().UTC(), username)
	if err != nil {
		log.Error("failed to update user token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}

	return s.checkAffected(log, result, "update token", username)
}

// ClearToken implements store.UserStore.ClearToken.
// The token column is set to NULL so the old value can never authenticate.
func (s *UserStore) ClearToken(ctx context.Context, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET token = NULL, updated_at = $1
		WHERE username = $2
	`
	result, err := s.db.ExecContext(ctx, query, time.Now().UTC(), username)
	if err != nil {
		log.Error("failed to clear user token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}

	return s.checkAffected(log, result, "clear token", username)
}

func (s *UserStore) checkAffected(
	log *slog.Logger,
	result sql.Result,
	operation, username string,
) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}
	if rowsAffected == 0 {
		log.Debug("user not found",
			slog.String("operation", operation),
			slog.String("username", username))
		return store.ErrUserNotFound
	}
	return nil
}

// WithTx implements store.UserStore.WithTx.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:     tx,
		logger: s.logger,
	}
}
