package store

import (
	"context"
	"database/sql"

	"github.com/gocontacts/contacts-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Every read or write is scoped to the owning contact ID; verifying that the
// contact itself belongs to the caller is the service layer's job.
type AddressStore interface {
	// Create saves a new address and fills in its store-assigned ID.
	Create(ctx context.Context, address *domain.Address) error

	// GetByID retrieves the address with the given ID linked to contactID.
	// Returns ErrAddressNotFound if no such address exists for that contact.
	GetByID(ctx context.Context, contactID, id int64) (*domain.Address, error)

	// Update overwrites all mutable fields of the address identified by
	// (address.ContactID, address.ID) in a single conditional statement.
	// Returns ErrAddressNotFound if no such address exists for that contact.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes the address linked to contactID.
	// Returns ErrAddressNotFound if no such address exists for that contact.
	Delete(ctx context.Context, contactID, id int64) error

	// ListByContact returns all addresses of the given contact, ordered by ID.
	ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error)

	// WithTx returns an AddressStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) AddressStore
}
