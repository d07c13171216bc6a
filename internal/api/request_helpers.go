package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
)

// getUserFromContext extracts the authenticated user from the request
// context. The user is placed there by the authentication middleware.
func getUserFromContext(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}

// getPathID extracts a numeric ID from the URL path parameters. IDs must be
// positive integers; anything else is rejected before touching storage.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required")
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}

	return id, nil
}

// handleUserAndPathID extracts the authenticated user and a numeric path
// parameter in one step. It writes the error response itself when either
// extraction fails and reports success through the boolean.
func handleUserAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (*domain.User, int64, bool) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return nil, 0, false
	}

	id, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, 0, false
	}

	return user, id, true
}

// queryInt parses an integer query parameter, returning fallback when the
// parameter is absent. A malformed value is reported as an error.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	return v, nil
}
