package mocks

import (
	"context"
	"database/sql"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn    func(ctx context.Context, token string) (*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	UpdateTokenFn   func(ctx context.Context, username, token string) error
	ClearTokenFn    func(ctx context.Context, username string) error

	// Data for default implementation, keyed by username
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	m.Users[user.Username] = user
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// GetByToken implements the UserStore interface
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	for _, user := range m.Users {
		if user.Token != "" && user.Token == token {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	existing, exists := m.Users[user.Username]
	if !exists {
		return store.ErrUserNotFound
	}

	existing.Name = user.Name
	existing.HashedPassword = user.HashedPassword
	return nil
}

// UpdateToken implements the UserStore interface
func (m *MockUserStore) UpdateToken(ctx context.Context, username, token string) error {
	if m.UpdateTokenFn != nil {
		return m.UpdateTokenFn(ctx, username, token)
	}

	user, exists := m.Users[username]
	if !exists {
		return store.ErrUserNotFound
	}

	user.Token = token
	return nil
}

// ClearToken implements the UserStore interface
func (m *MockUserStore) ClearToken(ctx context.Context, username string) error {
	if m.ClearTokenFn != nil {
		return m.ClearTokenFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return store.ErrUserNotFound
	}

	user.Token = ""
	return nil
}

// WithTx implements the UserStore interface for transaction support
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	// For mock purposes, just return the same mock
	return m
}
