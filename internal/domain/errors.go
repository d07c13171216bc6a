package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// ValidationError wraps it with per-field details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID parameter is malformed or not a
	// positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when a request carries no usable
	// credentials. The same error covers a missing token, an unknown token,
	// and a failed password check so the caller cannot tell which one failed.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one entry per violated field, not just the first.
// It unwraps to ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap supports errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
