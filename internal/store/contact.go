package store

import (
	"context"
	"database/sql"

	"github.com/gocontacts/contacts-api/internal/domain"
)

// ContactFilter describes the conjunctive search predicate for contacts.
// Username is always required; the remaining filters apply only when
// non-empty and match case-insensitively as substrings.
type ContactFilter struct {
	Username string // owner, required
	Name     string // matches first_name OR last_name
	Email    string
	Phone    string
	Limit    int
	Offset   int
}

// ContactStore defines the interface for contact data persistence.
// Every read or write is scoped to the owning username so ownership is
// re-verified on each call.
type ContactStore interface {
	// Create saves a new contact and fills in its store-assigned ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves the contact with the given ID owned by username.
	// Returns ErrContactNotFound if no such contact exists for that owner.
	GetByID(ctx context.Context, username string, id int64) (*domain.Contact, error)

	// Update overwrites all mutable fields of the contact identified by
	// (contact.Username, contact.ID) in a single conditional statement.
	// Returns ErrContactNotFound if no such contact exists for that owner.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes the contact owned by username. Associated addresses are
	// removed by the schema's cascading delete.
	// Returns ErrContactNotFound if no such contact exists for that owner.
	Delete(ctx context.Context, username string, id int64) error

	// Exists reports whether exactly one contact with the given ID is owned
	// by username.
	Exists(ctx context.Context, username string, id int64) (bool, error)

	// List returns the page of contacts matching the filter, ordered by ID.
	// An empty result is a valid page, not an error.
	List(ctx context.Context, filter ContactFilter) ([]*domain.Contact, error)

	// Count returns the number of contacts matching the filter, ignoring
	// Limit and Offset.
	Count(ctx context.Context, filter ContactFilter) (int64, error)

	// WithTx returns a ContactStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) ContactStore
}
