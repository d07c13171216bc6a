package servicemock

import (
	"context"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// MockAddressService implements service.AddressService for testing
type MockAddressService struct {
	CreateFn func(ctx context.Context, username string, contactID int64, input service.AddressInput) (*domain.Address, error)
	GetFn    func(ctx context.Context, username string, contactID, addressID int64) (*domain.Address, error)
	UpdateFn func(ctx context.Context, username string, contactID, addressID int64, input service.AddressInput) (*domain.Address, error)
	RemoveFn func(ctx context.Context, username string, contactID, addressID int64) error
	ListFn   func(ctx context.Context, username string, contactID int64) ([]*domain.Address, error)
}

// Create implements the AddressService interface
func (m *MockAddressService) Create(ctx context.Context, username string, contactID int64, input service.AddressInput) (*domain.Address, error) {
	return m.CreateFn(ctx, username, contactID, input)
}

// Get implements the AddressService interface
func (m *MockAddressService) Get(ctx context.Context, username string, contactID, addressID int64) (*domain.Address, error) {
	return m.GetFn(ctx, username, contactID, addressID)
}

// Update implements the AddressService interface
func (m *MockAddressService) Update(ctx context.Context, username string, contactID, addressID int64, input service.AddressInput) (*domain.Address, error) {
	return m.UpdateFn(ctx, username, contactID, addressID, input)
}

// Remove implements the AddressService interface
func (m *MockAddressService) Remove(ctx context.Context, username string, contactID, addressID int64) error {
	return m.RemoveFn(ctx, username, contactID, addressID)
}

// List implements the AddressService interface
func (m *MockAddressService) List(ctx context.Context, username string, contactID int64) ([]*domain.Address, error) {
	return m.ListFn(ctx, username, contactID)
}
