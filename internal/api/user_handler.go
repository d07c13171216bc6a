package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// UserHandler handles user registration, session and profile API requests.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Register handles the POST /api/users endpoint.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserResponse{
		Username: user.Username,
		Name:     user.Name,
	})
}

// Login handles the POST /api/users/login endpoint.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	token, err := h.userService.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// Unknown username and wrong password share one message.
		HandleAPIError(w, r, err, usernameOrPasswordWrong(err))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, TokenResponse{Token: token})
}

// GetCurrent handles the GET /api/users/current endpoint.
func (h *UserHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserResponse{
		Username: user.Username,
		Name:     user.Name,
	})
}

// UpdateCurrent handles the PATCH /api/users/current endpoint.
func (h *UserHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req UpdateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	updated, err := h.userService.Update(r.Context(), user.Username, service.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, UserResponse{
		Username: updated.Username,
		Name:     updated.Name,
	})
}

// Logout handles the DELETE /api/users/logout endpoint.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	if err := h.userService.Logout(r.Context(), user.Username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// usernameOrPasswordWrong picks the login failure message for credential
// errors and leaves other errors to their default message.
func usernameOrPasswordWrong(err error) string {
	if err == nil {
		return ""
	}
	if MapErrorToStatusCode(err) == http.StatusUnauthorized {
		return "Username or password wrong"
	}
	return ""
}
