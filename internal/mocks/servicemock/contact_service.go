package servicemock

import (
	"context"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// MockContactService implements service.ContactService for testing
type MockContactService struct {
	CreateFn func(ctx context.Context, username string, input service.ContactInput) (*domain.Contact, error)
	GetFn    func(ctx context.Context, username string, contactID int64) (*domain.Contact, error)
	UpdateFn func(ctx context.Context, username string, contactID int64, input service.ContactInput) (*domain.Contact, error)
	RemoveFn func(ctx context.Context, username string, contactID int64) error
	SearchFn func(ctx context.Context, username string, input service.SearchContactsInput) ([]*domain.Contact, service.Paging, error)
}

// Create implements the ContactService interface
func (m *MockContactService) Create(ctx context.Context, username string, input service.ContactInput) (*domain.Contact, error) {
	return m.CreateFn(ctx, username, input)
}

// Get implements the ContactService interface
func (m *MockContactService) Get(ctx context.Context, username string, contactID int64) (*domain.Contact, error) {
	return m.GetFn(ctx, username, contactID)
}

// Update implements the ContactService interface
func (m *MockContactService) Update(ctx context.Context, username string, contactID int64, input service.ContactInput) (*domain.Contact, error) {
	return m.UpdateFn(ctx, username, contactID, input)
}

// Remove implements the ContactService interface
func (m *MockContactService) Remove(ctx context.Context, username string, contactID int64) error {
	return m.RemoveFn(ctx, username, contactID)
}

// Search implements the ContactService interface
func (m *MockContactService) Search(ctx context.Context, username string, input service.SearchContactsInput) ([]*domain.Contact, service.Paging, error) {
	return m.SearchFn(ctx, username, input)
}
