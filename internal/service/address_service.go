package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// AddressInput carries the validated payload for address create and update.
// Updates use full-replace semantics: every field is overwritten.
type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

// AddressService provides address CRUD nested under a contact. Every
// operation first re-verifies that the contact belongs to the caller; the
// address query itself is then scoped to that contact.
type AddressService interface {
	// Create persists a new address under the caller's contact.
	// Returns store.ErrContactNotFound if the contact is absent or not owned.
	Create(ctx context.Context, username string, contactID int64, input AddressInput) (*domain.Address, error)

	// Get returns the address only if the full ownership chain
	// user -> contact -> address holds.
	Get(ctx context.Context, username string, contactID, addressID int64) (*domain.Address, error)

	// Update overwrites all fields of the address if the ownership chain
	// holds.
	Update(ctx context.Context, username string, contactID, addressID int64, input AddressInput) (*domain.Address, error)

	// Remove deletes the address if the ownership chain holds.
	Remove(ctx context.Context, username string, contactID, addressID int64) error

	// List returns all addresses of the caller's contact.
	List(ctx context.Context, username string, contactID int64) ([]*domain.Address, error)
}

// AddressServiceImpl implements the AddressService interface.
type AddressServiceImpl struct {
	contactStore store.ContactStore
	addressStore store.AddressStore
	logger       *slog.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(
	contactStore store.ContactStore,
	addressStore store.AddressStore,
	logger *slog.Logger,
) *AddressServiceImpl {
	return &AddressServiceImpl{
		contactStore: contactStore,
		addressStore: addressStore,
		logger:       logger.With(slog.String("component", "address_service")),
	}
}

var _ AddressService = (*AddressServiceImpl)(nil)

// checkContactMustExist verifies that exactly one contact with the given ID
// is owned by username. Absence and foreign ownership are both reported as
// store.ErrContactNotFound. The check is advisory for the operation that
// follows; see the package documentation of store for the accepted race.
func (s *AddressServiceImpl) checkContactMustExist(ctx context.Context, username string, contactID int64) error {
	ok, err := s.contactStore.Exists(ctx, username, contactID)
	if err != nil {
		s.logger.Error("failed to check contact ownership",
			"error", err,
			"username", username,
			"contact_id", contactID)
		return err
	}
	if !ok {
		return store.ErrContactNotFound
	}
	return nil
}

// Create implements AddressService.Create.
func (s *AddressServiceImpl) Create(ctx context.Context, username string, contactID int64, input AddressInput) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address, err := domain.NewAddress(contactID, input.Street, input.City, input.Province, input.Country, input.PostalCode)
	if err != nil {
		return nil, err
	}

	if err := s.addressStore.Create(ctx, address); err != nil {
		s.logger.Error("failed to create address",
			"error", err,
			"username", username,
			"contact_id", contactID)
		return nil, err
	}

	return address, nil
}

// Get implements AddressService.Get.
func (s *AddressServiceImpl) Get(ctx context.Context, username string, contactID, addressID int64) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address, err := s.addressStore.GetByID(ctx, contactID, addressID)
	if err != nil {
		if !errors.Is(err, store.ErrAddressNotFound) {
			s.logger.Error("failed to get address",
				"error", err,
				"contact_id", contactID,
				"address_id", addressID)
		}
		return nil, err
	}

	return address, nil
}

// Update implements AddressService.Update.
func (s *AddressServiceImpl) Update(ctx context.Context, username string, contactID, addressID int64, input AddressInput) (*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    input.Country,
		PostalCode: input.PostalCode,
	}

	if err := s.addressStore.Update(ctx, address); err != nil {
		if !errors.Is(err, store.ErrAddressNotFound) {
			s.logger.Error("failed to update address",
				"error", err,
				"contact_id", contactID,
				"address_id", addressID)
		}
		return nil, err
	}

	return address, nil
}

// Remove implements AddressService.Remove.
func (s *AddressServiceImpl) Remove(ctx context.Context, username string, contactID, addressID int64) error {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return err
	}

	if err := s.addressStore.Delete(ctx, contactID, addressID); err != nil {
		if !errors.Is(err, store.ErrAddressNotFound) {
			s.logger.Error("failed to delete address",
				"error", err,
				"contact_id", contactID,
				"address_id", addressID)
		}
		return err
	}

	return nil
}

// List implements AddressService.List.
func (s *AddressServiceImpl) List(ctx context.Context, username string, contactID int64) ([]*domain.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressStore.ListByContact(ctx, contactID)
	if err != nil {
		s.logger.Error("failed to list addresses",
			"error", err,
			"contact_id", contactID)
		return nil, err
	}

	return addresses, nil
}
