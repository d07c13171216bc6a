package domain

import (
	"errors"
	"time"
)

// Validation errors for Contact fields.
var (
	ErrEmptyFirstName    = errors.New("first name cannot be empty")
	ErrFirstNameTooLong  = errors.New("first name must be at most 100 characters long")
	ErrLastNameTooLong   = errors.New("last name must be at most 100 characters long")
	ErrContactEmailLong  = errors.New("email must be at most 200 characters long")
	ErrContactPhoneLong  = errors.New("phone must be at most 20 characters long")
	ErrEmptyContactOwner = errors.New("contact owner username cannot be empty")
)

// Contact is an address-book entry owned by exactly one user. The ID is
// assigned by the store on create. LastName, Email and Phone are optional
// and empty when unset.
type Contact struct {
	ID        int64     `json:"id"`
	Username  string    `json:"-"` // Owning user, never exposed in responses
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NewContact creates a contact owned by the given user.
func NewContact(username, firstName, lastName, email, phone string) (*Contact, error) {
	contact := &Contact{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks field bounds before the contact is persisted.
func (c *Contact) Validate() error {
	if c.Username == "" {
		return ErrEmptyContactOwner
	}
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if len(c.FirstName) > 100 {
		return ErrFirstNameTooLong
	}
	if len(c.LastName) > 100 {
		return ErrLastNameTooLong
	}
	if len(c.Email) > 200 {
		return ErrContactEmailLong
	}
	if len(c.Phone) > 20 {
		return ErrContactPhoneLong
	}
	return nil
}
