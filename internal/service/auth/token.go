package auth

import "github.com/google/uuid"

// TokenGenerator produces opaque session tokens. Tokens are bearer
// credentials stored directly on the user record; they carry no structure
// and no expiry.
type TokenGenerator interface {
	// Generate returns a new collision-resistant opaque token.
	Generate() string
}

// UUIDTokenGenerator implements TokenGenerator with random (v4) UUIDs.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a new UUIDTokenGenerator.
func NewUUIDTokenGenerator() *UUIDTokenGenerator {
	return &UUIDTokenGenerator{}
}

// Generate implements the TokenGenerator interface.
func (g *UUIDTokenGenerator) Generate() string {
	return uuid.New().String()
}
