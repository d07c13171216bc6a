package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/store"
)

// AuthMiddleware provides opaque-token authentication for routes. The
// Authorization header carries the token verbatim, with no scheme prefix,
// and is resolved against the user table on every request.
type AuthMiddleware struct {
	userStore store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		userStore: userStore,
	}
}

// Authenticate resolves the token from the Authorization header and adds
// the owning user to the request context. A missing token and an unknown
// token both produce the same 401 response, so a client cannot distinguish
// the two cases.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := m.userStore.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}
			slog.Error("failed to resolve session token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := shared.WithUser(r.Context(), user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
