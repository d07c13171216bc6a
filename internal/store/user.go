package store

import (
	"context"
	"database/sql"

	"github.com/gocontacts/contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user whose stored session token equals the
	// given value. Returns ErrUserNotFound if no user matches. Callers must
	// not pass an empty token; a logged-out user has no token at all.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// Update overwrites the user's name and hashed password.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// UpdateToken replaces the user's session token, logging in the user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateToken(ctx context.Context, username, token string) error

	// ClearToken removes the user's session token so it can no longer
	// authenticate. Returns ErrUserNotFound if the user does not exist.
	ClearToken(ctx context.Context, username string) error

	// WithTx returns a UserStore that runs on the provided transaction.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
