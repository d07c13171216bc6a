package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Passwords are capped at 72 characters, the bcrypt input limit.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest defines the payload for the partial profile update
// endpoint. Omitted fields are left unchanged; a field that is present must
// be non-empty.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=1,max=100"`
	Password *string `json:"password" validate:"omitnil,min=1,max=72"`
}

// UserResponse defines the user representation returned by the API.
// Credentials and the session token are never part of it.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse defines the successful login response.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContactRequest defines the payload for contact create and update. Updates
// replace every field with the payload values.
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"omitempty,email,max=200"`
	Phone     string `json:"phone"      validate:"omitempty,number,max=20"`
}

// SearchContactsRequest defines the query parameters for the contact search
// endpoint, after defaulting. The text filters are optional substrings.
type SearchContactsRequest struct {
	Name  string `validate:"omitempty,max=100"`
	Email string `validate:"omitempty,max=200"`
	Phone string `validate:"omitempty,max=20"`
	Page  int    `validate:"gte=1"`
	Size  int    `validate:"gte=1,lte=100"`
}

// AddressRequest defines the payload for address create and update. Updates
// replace every field with the payload values.
type AddressRequest struct {
	Street     string `json:"street"      validate:"omitempty,max=255"`
	City       string `json:"city"        validate:"omitempty,max=255"`
	Province   string `json:"province"    validate:"omitempty,max=255"`
	Country    string `json:"country"     validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}
