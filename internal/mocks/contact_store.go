package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing
type MockContactStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, contact *domain.Contact) error
	GetByIDFn func(ctx context.Context, username string, id int64) (*domain.Contact, error)
	UpdateFn  func(ctx context.Context, contact *domain.Contact) error
	DeleteFn  func(ctx context.Context, username string, id int64) error
	ExistsFn  func(ctx context.Context, username string, id int64) (bool, error)
	ListFn    func(ctx context.Context, filter store.ContactFilter) ([]*domain.Contact, error)
	CountFn   func(ctx context.Context, filter store.ContactFilter) (int64, error)

	// Data for default implementation, keyed by contact ID
	Contacts map[int64]*domain.Contact
	NextID   int64
}

// NewMockContactStore creates a new mock store with initialized defaults
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[int64]*domain.Contact),
		NextID:   1,
	}
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	contact.ID = m.NextID
	m.NextID++
	m.Contacts[contact.ID] = contact
	return nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, username, id)
	}

	contact, exists := m.Contacts[id]
	if !exists || contact.Username != username {
		return nil, store.ErrContactNotFound
	}

	return contact, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	existing, exists := m.Contacts[contact.ID]
	if !exists || existing.Username != contact.Username {
		return store.ErrContactNotFound
	}

	existing.FirstName = contact.FirstName
	existing.LastName = contact.LastName
	existing.Email = contact.Email
	existing.Phone = contact.Phone
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, username string, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, username, id)
	}

	contact, exists := m.Contacts[id]
	if !exists || contact.Username != username {
		return store.ErrContactNotFound
	}

	delete(m.Contacts, id)
	return nil
}

// Exists implements the ContactStore interface
func (m *MockContactStore) Exists(ctx context.Context, username string, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, username, id)
	}

	contact, exists := m.Contacts[id]
	return exists && contact.Username == username, nil
}

// List implements the ContactStore interface
func (m *MockContactStore) List(ctx context.Context, filter store.ContactFilter) ([]*domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	matched := m.match(filter)

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Count implements the ContactStore interface
func (m *MockContactStore) Count(ctx context.Context, filter store.ContactFilter) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}

	return int64(len(m.match(filter))), nil
}

// WithTx implements the ContactStore interface for transaction support
func (m *MockContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	// For mock purposes, just return the same mock
	return m
}

// match applies the filter semantics of the real store: owner match plus
// case-insensitive substring filters, ordered by ID.
func (m *MockContactStore) match(filter store.ContactFilter) []*domain.Contact {
	var matched []*domain.Contact
	for _, contact := range m.Contacts {
		if contact.Username != filter.Username {
			continue
		}
		if filter.Name != "" &&
			!containsFold(contact.FirstName, filter.Name) &&
			!containsFold(contact.LastName, filter.Name) {
			continue
		}
		if filter.Email != "" && !containsFold(contact.Email, filter.Email) {
			continue
		}
		if filter.Phone != "" && !containsFold(contact.Phone, filter.Phone) {
			continue
		}
		matched = append(matched, contact)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
