package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// AddressHandler handles address API requests nested under a contact.
type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		validator:      validator.New(),
	}
}

// Create handles the POST /api/contacts/{contactId}/addresses endpoint.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return
	}

	var req AddressRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	address, err := h.addressService.Create(r.Context(), user.Username, contactID, service.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, address)
}

// Get handles the GET /api/contacts/{contactId}/addresses/{addressId}
// endpoint.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	address, err := h.addressService.Get(r.Context(), user.Username, contactID, addressID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, address)
}

// Update handles the PUT /api/contacts/{contactId}/addresses/{addressId}
// endpoint.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req AddressRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	address, err := h.addressService.Update(r.Context(), user.Username, contactID, addressID, service.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, address)
}

// Delete handles the DELETE /api/contacts/{contactId}/addresses/{addressId}
// endpoint.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, addressID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.addressService.Remove(r.Context(), user.Username, contactID, addressID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// List handles the GET /api/contacts/{contactId}/addresses endpoint.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return
	}

	addresses, err := h.addressService.List(r.Context(), user.Username, contactID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if addresses == nil {
		addresses = []*domain.Address{}
	}

	shared.RespondWithData(w, r, http.StatusOK, addresses)
}

// pathIDs extracts the authenticated user plus both path IDs of a nested
// address route, writing the error response itself on failure.
func (h *AddressHandler) pathIDs(w http.ResponseWriter, r *http.Request) (*domain.User, int64, int64, bool) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return nil, 0, 0, false
	}

	addressID, err := getPathID(r, "addressId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, 0, 0, false
	}

	return user, contactID, addressID, true
}
