package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/mocks/servicemock"
	"github.com/gocontacts/contacts-api/internal/service"
	"github.com/gocontacts/contacts-api/internal/store"
)

// decodeBody decodes the recorded response body into a generic map.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// withTestUser attaches an authenticated user to the request context the way
// the auth middleware does.
func withTestUser(req *http.Request, username string) *http.Request {
	user := &domain.User{Username: username, Name: "Test User"}
	return req.WithContext(shared.WithUser(req.Context(), user))
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	userService := &servicemock.MockUserService{
		RegisterFn: func(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
			if input.Username == "taken" {
				return nil, store.ErrUsernameExists
			}
			return &domain.User{Username: input.Username, Name: input.Name}, nil
		},
	}
	handler := NewUserHandler(userService)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "test",
				"password": "rahasia",
				"name":     "Test User",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "rahasia",
				"name":     "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "test",
				"name":     "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "username too long",
			payload: map[string]interface{}{
				"username": strings.Repeat("a", 101),
				"password": "rahasia",
				"name":     "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password over bcrypt limit",
			payload: map[string]interface{}{
				"username": "test",
				"password": strings.Repeat("a", 73),
				"name":     "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			payload: map[string]interface{}{
				"username": "taken",
				"password": "rahasia",
				"name":     "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/users", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			body := decodeBody(t, recorder)
			if tt.wantStatus == http.StatusOK {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "test", data["username"])
				assert.Equal(t, "Test User", data["name"])
				assert.NotContains(t, data, "password")
				assert.NotContains(t, data, "token")
			} else {
				assert.NotEmpty(t, body["errors"])
				assert.NotContains(t, body, "data")
			}
		})
	}
}

func TestRegisterMalformedJSON(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(&servicemock.MockUserService{})

	req := httptest.NewRequest("POST", "/api/users", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	userService := &servicemock.MockUserService{
		LoginFn: func(ctx context.Context, input service.LoginInput) (string, error) {
			if input.Username == "test" && input.Password == "rahasia" {
				return "session-token", nil
			}
			return "", domain.ErrUnauthorized
		},
	}
	handler := NewUserHandler(userService)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  string
	}{
		{
			name: "valid credentials",
			payload: map[string]interface{}{
				"username": "test",
				"password": "rahasia",
			},
			wantStatus: http.StatusOK,
			wantToken:  "session-token",
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"username": "test",
				"password": "wrong",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown username",
			payload: map[string]interface{}{
				"username": "missing",
				"password": "rahasia",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "test",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBuffer(payloadBytes))
			recorder := httptest.NewRecorder()

			handler.Login(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			body := decodeBody(t, recorder)
			if tt.wantToken != "" {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, tt.wantToken, data["token"])
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Username or password wrong", body["errors"])
			}
		})
	}
}

func TestGetCurrentEndpoint(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(&servicemock.MockUserService{})

	req := withTestUser(httptest.NewRequest("GET", "/api/users/current", nil), "test")
	recorder := httptest.NewRecorder()

	handler.GetCurrent(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "test", data["username"])
	assert.Equal(t, "Test User", data["name"])
}

func TestGetCurrentWithoutUser(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(&servicemock.MockUserService{})

	req := httptest.NewRequest("GET", "/api/users/current", nil)
	recorder := httptest.NewRecorder()

	handler.GetCurrent(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateCurrentEndpoint(t *testing.T) {
	t.Parallel()

	userService := &servicemock.MockUserService{
		UpdateFn: func(ctx context.Context, username string, input service.UpdateUserInput) (*domain.User, error) {
			user := &domain.User{Username: username, Name: "Test User"}
			if input.Name != nil {
				user.Name = *input.Name
			}
			return user, nil
		},
	}
	handler := NewUserHandler(userService)

	payload := []byte(`{"name": "Renamed"}`)
	req := withTestUser(
		httptest.NewRequest("PATCH", "/api/users/current", bytes.NewBuffer(payload)), "test")
	recorder := httptest.NewRecorder()

	handler.UpdateCurrent(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", data["name"])
}

func TestUpdateCurrentValidation(t *testing.T) {
	t.Parallel()

	userService := &servicemock.MockUserService{
		UpdateFn: func(ctx context.Context, username string, input service.UpdateUserInput) (*domain.User, error) {
			return &domain.User{Username: username, Name: "Test User"}, nil
		},
	}
	handler := NewUserHandler(userService)

	tests := []struct {
		name       string
		payload    string
		wantStatus int
		wantField  string
	}{
		{
			name:       "name too long",
			payload:    `{"name": "` + strings.Repeat("a", 101) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "name",
		},
		{
			// A present field must be non-empty; only an absent field is
			// left untouched.
			name:       "empty name",
			payload:    `{"name": ""}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "name",
		},
		{
			name:       "empty password",
			payload:    `{"password": ""}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "password",
		},
		{
			name:       "password over bcrypt limit",
			payload:    `{"password": "` + strings.Repeat("a", 73) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "password",
		},
		{
			name:       "empty body leaves everything untouched",
			payload:    `{}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withTestUser(
				httptest.NewRequest("PATCH", "/api/users/current", strings.NewReader(tt.payload)), "test")
			recorder := httptest.NewRecorder()

			handler.UpdateCurrent(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantField != "" {
				body := decodeBody(t, recorder)
				assert.Contains(t, body["errors"], tt.wantField)
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	loggedOut := ""
	userService := &servicemock.MockUserService{
		LogoutFn: func(ctx context.Context, username string) error {
			loggedOut = username
			return nil
		},
	}
	handler := NewUserHandler(userService)

	req := withTestUser(httptest.NewRequest("DELETE", "/api/users/logout", nil), "test")
	recorder := httptest.NewRecorder()

	handler.Logout(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "test", loggedOut)
	body := decodeBody(t, recorder)
	assert.Equal(t, "OK", body["data"])
}
