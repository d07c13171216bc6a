package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors. A taken username is reported as a plain bad
	// request, matching the rest of the registration validation.
	case errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "User is not found"

	case errors.Is(err, store.ErrContactNotFound):
		return "Contact is not found"

	case errors.Is(err, store.ErrAddressNotFound):
		return "Address is not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already registered"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation):
		// Validation errors carry safe per-field messages already.
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			parts := make([]string, 0, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
			}
			return strings.Join(parts, "; ")
		}
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the standard error response for err. The status code
// and client message come from the error type; fallbackMessage, when
// non-empty, overrides the derived message. Server errors are logged with
// the underlying error, client errors are not.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)

	message := fallbackMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	if status >= http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}
	shared.RespondWithError(w, r, status, message)
}

// newValidationError converts a validator.ValidationErrors into a
// domain.ValidationError listing every violated field, using the JSON field
// names clients see in their payloads.
func newValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("request", "is invalid")
	}

	result := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, domain.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: validationTagMessage(fe),
		})
	}
	return result
}

// jsonFieldName converts a Go struct field name to the snake_case name used
// in request payloads.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validationTagMessage maps a violated validation tag to a client-facing
// message.
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "number":
		return "must contain only digits"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
