package domain

import (
	"errors"
	"time"
)

// Validation errors for User fields.
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 100 characters long")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooLong         = errors.New("name must be at most 100 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 100 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. The username is the primary
// identity; Token holds the opaque session token issued at login and is
// empty while the user is logged out.
type User struct {
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext, only populated transiently before hashing
	HashedPassword string    `json:"-"` // Never exposed in JSON
	Token          string    `json:"-"` // Opaque session token, empty when logged out
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given identity and plaintext password.
// The caller is responsible for hashing the password before storage.
func NewUser(username, password, name string) (*User, error) {
	user := &User{
		Username:  username,
		Name:      name,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks field bounds. A user must carry either a plaintext
// password (pre-hash, during create/update) or an existing hash.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 100 {
		return ErrUsernameTooLong
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if len(u.Name) > 100 {
		return ErrNameTooLong
	}
	if u.Password != "" {
		if len(u.Password) > 100 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}
