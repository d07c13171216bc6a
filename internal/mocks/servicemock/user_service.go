package servicemock

import (
	"context"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	LoginFn    func(ctx context.Context, input service.LoginInput) (string, error)
	UpdateFn   func(ctx context.Context, username string, input service.UpdateUserInput) (*domain.User, error)
	LogoutFn   func(ctx context.Context, username string) error
}

// Register implements the UserService interface
func (m *MockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	return m.RegisterFn(ctx, input)
}

// Login implements the UserService interface
func (m *MockUserService) Login(ctx context.Context, input service.LoginInput) (string, error) {
	return m.LoginFn(ctx, input)
}

// Update implements the UserService interface
func (m *MockUserService) Update(ctx context.Context, username string, input service.UpdateUserInput) (*domain.User, error) {
	return m.UpdateFn(ctx, username, input)
}

// Logout implements the UserService interface
func (m *MockUserService) Logout(ctx context.Context, username string) error {
	return m.LogoutFn(ctx, username)
}
