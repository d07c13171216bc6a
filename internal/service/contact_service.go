package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// ContactInput carries the validated payload for contact create and update.
// Updates use full-replace semantics: every field is overwritten.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SearchContactsInput carries the validated search parameters. Page and
// Size are already defaulted by the caller; the text filters apply only
// when non-empty.
type SearchContactsInput struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Paging describes the position of a result page within the full result set.
type Paging struct {
	Page      int   `json:"page"`
	TotalPage int   `json:"total_page"`
	TotalItem int64 `json:"total_item"`
}

// ContactService provides contact CRUD and search, always scoped to the
// owning user.
type ContactService interface {
	// Create persists a new contact owned by username.
	Create(ctx context.Context, username string, input ContactInput) (*domain.Contact, error)

	// Get returns the contact only if it is owned by username.
	// Returns store.ErrContactNotFound otherwise.
	Get(ctx context.Context, username string, contactID int64) (*domain.Contact, error)

	// Update overwrites all fields of the contact if it is owned by
	// username. Returns store.ErrContactNotFound otherwise.
	Update(ctx context.Context, username string, contactID int64, input ContactInput) (*domain.Contact, error)

	// Remove deletes the contact if it is owned by username; its addresses
	// are removed with it. Returns store.ErrContactNotFound otherwise.
	Remove(ctx context.Context, username string, contactID int64) error

	// Search returns one page of the caller's contacts matching the filters
	// plus the paging descriptor. An empty page is a valid result.
	Search(ctx context.Context, username string, input SearchContactsInput) ([]*domain.Contact, Paging, error)
}

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) *ContactServiceImpl {
	return &ContactServiceImpl{
		contactStore: contactStore,
		logger:       logger.With(slog.String("component", "contact_service")),
	}
}

var _ ContactService = (*ContactServiceImpl)(nil)

// Create implements ContactService.Create.
func (s *ContactServiceImpl) Create(ctx context.Context, username string, input ContactInput) (*domain.Contact, error) {
	contact, err := domain.NewContact(username, input.FirstName, input.LastName, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			"error", err,
			"username", username)
		return nil, err
	}

	return contact, nil
}

// Get implements ContactService.Get.
func (s *ContactServiceImpl) Get(ctx context.Context, username string, contactID int64) (*domain.Contact, error) {
	contact, err := s.contactStore.GetByID(ctx, username, contactID)
	if err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to get contact",
				"error", err,
				"username", username,
				"contact_id", contactID)
		}
		return nil, err
	}
	return contact, nil
}

// Update implements ContactService.Update. The conditional UPDATE statement
// re-verifies ownership and replaces the record in one step.
func (s *ContactServiceImpl) Update(ctx context.Context, username string, contactID int64, input ContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:        contactID,
		Username:  username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := s.contactStore.Update(ctx, contact); err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to update contact",
				"error", err,
				"username", username,
				"contact_id", contactID)
		}
		return nil, err
	}

	return contact, nil
}

// Remove implements ContactService.Remove.
func (s *ContactServiceImpl) Remove(ctx context.Context, username string, contactID int64) error {
	if err := s.contactStore.Delete(ctx, username, contactID); err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to delete contact",
				"error", err,
				"username", username,
				"contact_id", contactID)
		}
		return err
	}
	return nil
}

// Search implements ContactService.Search.
func (s *ContactServiceImpl) Search(ctx context.Context, username string, input SearchContactsInput) ([]*domain.Contact, Paging, error) {
	filter := store.ContactFilter{
		Username: username,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Limit:    input.Size,
		Offset:   (input.Page - 1) * input.Size,
	}

	contacts, err := s.contactStore.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to search contacts",
			"error", err,
			"username", username)
		return nil, Paging{}, err
	}

	totalItem, err := s.contactStore.Count(ctx, filter)
	if err != nil {
		s.logger.Error("failed to count contacts",
			"error", err,
			"username", username)
		return nil, Paging{}, err
	}

	totalPage := int((totalItem + int64(input.Size) - 1) / int64(input.Size))

	paging := Paging{
		Page:      input.Page,
		TotalPage: totalPage,
		TotalItem: totalItem,
	}

	s.logger.Debug("contact search completed",
		"username", username,
		"page", paging.Page,
		"total_item", paging.TotalItem)
	return contacts, paging, nil
}
