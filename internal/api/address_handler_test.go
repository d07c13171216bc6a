package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/mocks"
	"github.com/gocontacts/contacts-api/internal/service"
)

// newAddressTestRouter wires the address routes over real services backed by
// mock stores. The returned store holds one contact with ID 1 owned by
// username "test".
func newAddressTestRouter(t *testing.T) (http.Handler, *mocks.MockAddressStore) {
	t.Helper()

	contactStore := mocks.NewMockContactStore()
	addressStore := mocks.NewMockAddressStore()
	seedContactStore(t, contactStore, "test", 1)

	handler := NewAddressHandler(
		service.NewAddressService(contactStore, addressStore, slog.Default()))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := &domain.User{Username: "test", Name: "Test User"}
			next.ServeHTTP(w, req.WithContext(shared.WithUser(req.Context(), user)))
		})
	})
	r.Post("/api/contacts/{contactId}/addresses", handler.Create)
	r.Get("/api/contacts/{contactId}/addresses", handler.List)
	r.Get("/api/contacts/{contactId}/addresses/{addressId}", handler.Get)
	r.Put("/api/contacts/{contactId}/addresses/{addressId}", handler.Update)
	r.Delete("/api/contacts/{contactId}/addresses/{addressId}", handler.Delete)
	return r, addressStore
}

func seedAddress(t *testing.T, addressStore *mocks.MockAddressStore, contactID int64) *domain.Address {
	t.Helper()
	address, err := domain.NewAddress(contactID,
		"jalan test", "kota test", "provinsi test", "indonesia", "23232")
	require.NoError(t, err)
	require.NoError(t, addressStore.Create(context.Background(), address))
	return address
}

func TestAddressCreateEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid address",
			payload: map[string]interface{}{
				"street":      "jalan test",
				"city":        "kota test",
				"province":    "provinsi test",
				"country":     "indonesia",
				"postal_code": "23232",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "required fields only",
			payload: map[string]interface{}{
				"country":     "indonesia",
				"postal_code": "23232",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing country",
			payload: map[string]interface{}{
				"postal_code": "23232",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing postal code",
			payload: map[string]interface{}{
				"country": "indonesia",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newAddressTestRouter(t)

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/contacts/1/addresses",
				bytes.NewBuffer(payloadBytes))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			body := decodeBody(t, recorder)
			if tt.wantStatus == http.StatusOK {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(1), data["id"])
				assert.Equal(t, tt.payload["country"], data["country"])
				assert.NotContains(t, data, "contact_id")
			} else {
				assert.NotEmpty(t, body["errors"])
			}
		})
	}
}

func TestAddressCreateContactNotFound(t *testing.T) {
	t.Parallel()

	router, _ := newAddressTestRouter(t)

	payload := []byte(`{"country": "indonesia", "postal_code": "23232"}`)
	req := httptest.NewRequest("POST", "/api/contacts/42/addresses", bytes.NewBuffer(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Contact is not found", body["errors"])
}

func TestAddressGetEndpoint(t *testing.T) {
	t.Parallel()

	router, addressStore := newAddressTestRouter(t)
	seedAddress(t, addressStore, 1)

	req := httptest.NewRequest("GET", "/api/contacts/1/addresses/1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jalan test", data["street"])
	assert.Equal(t, "indonesia", data["country"])
}

func TestAddressGetNotFound(t *testing.T) {
	t.Parallel()

	router, _ := newAddressTestRouter(t)

	req := httptest.NewRequest("GET", "/api/contacts/1/addresses/42", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Address is not found", body["errors"])
}

func TestAddressGetInvalidID(t *testing.T) {
	t.Parallel()

	router, _ := newAddressTestRouter(t)

	req := httptest.NewRequest("GET", "/api/contacts/1/addresses/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddressUpdateEndpoint(t *testing.T) {
	t.Parallel()

	router, addressStore := newAddressTestRouter(t)
	seedAddress(t, addressStore, 1)

	payload := []byte(`{"country": "japan", "postal_code": "11111"}`)
	req := httptest.NewRequest("PUT", "/api/contacts/1/addresses/1", bytes.NewBuffer(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "japan", data["country"])
	// Full replace clears the omitted optional fields.
	assert.NotContains(t, data, "street")
	assert.Empty(t, addressStore.Addresses[1].Street)
}

func TestAddressDeleteEndpoint(t *testing.T) {
	t.Parallel()

	router, addressStore := newAddressTestRouter(t)
	seedAddress(t, addressStore, 1)

	req := httptest.NewRequest("DELETE", "/api/contacts/1/addresses/1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "OK", body["data"])
	assert.Empty(t, addressStore.Addresses)
}

func TestAddressListEndpoint(t *testing.T) {
	t.Parallel()

	router, addressStore := newAddressTestRouter(t)
	seedAddress(t, addressStore, 1)
	seedAddress(t, addressStore, 1)

	req := httptest.NewRequest("GET", "/api/contacts/1/addresses", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestAddressListEmpty(t *testing.T) {
	t.Parallel()

	router, _ := newAddressTestRouter(t)

	req := httptest.NewRequest("GET", "/api/contacts/1/addresses", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "empty list must serialize as an array")
	assert.Empty(t, data)
}
