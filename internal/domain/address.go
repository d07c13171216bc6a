package domain

import (
	"errors"
	"time"
)

// Validation errors for Address fields.
var (
	ErrEmptyCountry        = errors.New("country cannot be empty")
	ErrCountryTooLong      = errors.New("country must be at most 100 characters long")
	ErrEmptyPostalCode     = errors.New("postal code cannot be empty")
	ErrPostalCodeTooLong   = errors.New("postal code must be at most 10 characters long")
	ErrStreetTooLong       = errors.New("street must be at most 255 characters long")
	ErrCityTooLong         = errors.New("city must be at most 255 characters long")
	ErrProvinceTooLong     = errors.New("province must be at most 255 characters long")
	ErrEmptyAddressContact = errors.New("address must reference a contact")
)

// Address belongs to exactly one contact. Street, City and Province are
// optional; Country and PostalCode are required.
type Address struct {
	ID         int64     `json:"id"`
	ContactID  int64     `json:"-"` // Owning contact, never exposed in responses
	Street     string    `json:"street,omitempty"`
	City       string    `json:"city,omitempty"`
	Province   string    `json:"province,omitempty"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// NewAddress creates an address linked to the given contact.
func NewAddress(contactID int64, street, city, province, country, postalCode string) (*Address, error) {
	address := &Address{
		ContactID:  contactID,
		Street:     street,
		City:       city,
		Province:   province,
		Country:    country,
		PostalCode: postalCode,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate checks field bounds before the address is persisted.
func (a *Address) Validate() error {
	if a.ContactID <= 0 {
		return ErrEmptyAddressContact
	}
	if len(a.Street) > 255 {
		return ErrStreetTooLong
	}
	if len(a.City) > 255 {
		return ErrCityTooLong
	}
	if len(a.Province) > 255 {
		return ErrProvinceTooLong
	}
	if a.Country == "" {
		return ErrEmptyCountry
	}
	if len(a.Country) > 100 {
		return ErrCountryTooLong
	}
	if a.PostalCode == "" {
		return ErrEmptyPostalCode
	}
	if len(a.PostalCode) > 10 {
		return ErrPostalCodeTooLong
	}
	return nil
}
