package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, address *domain.Address) error
	GetByIDFn       func(ctx context.Context, contactID, id int64) (*domain.Address, error)
	UpdateFn        func(ctx context.Context, address *domain.Address) error
	DeleteFn        func(ctx context.Context, contactID, id int64) error
	ListByContactFn func(ctx context.Context, contactID int64) ([]*domain.Address, error)

	// Data for default implementation, keyed by address ID
	Addresses map[int64]*domain.Address
	NextID    int64
}

// NewMockAddressStore creates a new mock store with initialized defaults
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
		NextID:    1,
	}
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	address.ID = m.NextID
	m.NextID++
	m.Addresses[address.ID] = address
	return nil
}

// GetByID implements the AddressStore interface
func (m *MockAddressStore) GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, contactID, id)
	}

	address, exists := m.Addresses[id]
	if !exists || address.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}

	return address, nil
}

// Update implements the AddressStore interface
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}

	existing, exists := m.Addresses[address.ID]
	if !exists || existing.ContactID != address.ContactID {
		return store.ErrAddressNotFound
	}

	existing.Street = address.Street
	existing.City = address.City
	existing.Province = address.Province
	existing.Country = address.Country
	existing.PostalCode = address.PostalCode
	return nil
}

// Delete implements the AddressStore interface
func (m *MockAddressStore) Delete(ctx context.Context, contactID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, contactID, id)
	}

	address, exists := m.Addresses[id]
	if !exists || address.ContactID != contactID {
		return store.ErrAddressNotFound
	}

	delete(m.Addresses, id)
	return nil
}

// ListByContact implements the AddressStore interface
func (m *MockAddressStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	if m.ListByContactFn != nil {
		return m.ListByContactFn(ctx, contactID)
	}

	var matched []*domain.Address
	for _, address := range m.Addresses {
		if address.ContactID == contactID {
			matched = append(matched, address)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// WithTx implements the AddressStore interface for transaction support
func (m *MockAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	// For mock purposes, just return the same mock
	return m
}
