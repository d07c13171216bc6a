package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service/auth"
	"github.com/gocontacts/contacts-api/internal/store"
)

// RegisterInput carries the validated payload for user registration.
type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// LoginInput carries the validated payload for login.
type LoginInput struct {
	Username string
	Password string
}

// UpdateUserInput carries the validated payload for a partial profile
// update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// UserService provides registration, session and profile operations.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login verifies the credentials and issues a fresh opaque session
	// token, persisting it on the user record. A missing user and a wrong
	// password both return domain.ErrUnauthorized, deliberately
	// indistinguishable.
	Login(ctx context.Context, input LoginInput) (string, error)

	// Update applies a partial profile update to the given user and returns
	// the updated record. A new password is re-hashed before storage.
	Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error)

	// Logout clears the user's session token so it can no longer
	// authenticate.
	Logout(ctx context.Context, username string) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.TokenGenerator
	logger    *slog.Logger

	// runInTx wraps store.RunInTransaction over the service's database
	// handle. Tests replace it with a passthrough.
	runInTx func(ctx context.Context, fn store.TxFn) error
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenGenerator,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		logger:    logger.With(slog.String("component", "user_service")),
		runInTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(input.Username, input.Password, input.Name)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", input.Username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = s.runInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", input.Username)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"username", input.Username)
		}
		return nil, err
	}

	s.logger.Info("user registered successfully",
		"username", user.Username)
	return user, nil
}

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown username",
				"username", input.Username)
			return "", domain.ErrUnauthorized
		}
		s.logger.Error("failed to get user for login",
			"error", err,
			"username", input.Username)
		return "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, input.Password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"username", input.Username)
		return "", domain.ErrUnauthorized
	}

	token := s.tokens.Generate()
	if err := s.userStore.UpdateToken(ctx, user.Username, token); err != nil {
		s.logger.Error("failed to persist session token",
			"error", err,
			"username", input.Username)
		return "", err
	}

	s.logger.Info("user logged in successfully",
		"username", user.Username)
	return token, nil
}

// Update implements UserService.Update.
func (s *UserServiceImpl) Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error) {
	var updated *domain.User

	err := s.runInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByUsername(ctx, username)
		if err != nil {
			return err
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Password != nil {
			hashed, err := s.hasher.Hash(*input.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.HashedPassword = hashed
		}

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		s.logger.Error("failed to update user",
			"error", err,
			"username", username)
		return nil, err
	}

	s.logger.Info("user updated successfully",
		"username", username)
	return updated, nil
}

// Logout implements UserService.Logout.
func (s *UserServiceImpl) Logout(ctx context.Context, username string) error {
	if err := s.userStore.ClearToken(ctx, username); err != nil {
		s.logger.Error("failed to clear session token",
			"error", err,
			"username", username)
		return err
	}

	s.logger.Info("user logged out successfully",
		"username", username)
	return nil
}
