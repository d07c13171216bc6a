package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/domain"
	"github.com/gocontacts/contacts-api/internal/service"
)

// Default paging for contact search.
const (
	defaultSearchPage = 1
	defaultSearchSize = 10
)

// ContactHandler handles contact CRUD and search API requests.
type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator.New(),
	}
}

// Create handles the POST /api/contacts endpoint.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req ContactRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	contact, err := h.contactService.Create(r.Context(), user.Username, service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contact)
}

// Get handles the GET /api/contacts/{contactId} endpoint.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(r.Context(), user.Username, contactID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contact)
}

// Update handles the PUT /api/contacts/{contactId} endpoint.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return
	}

	var req ContactRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	contact, err := h.contactService.Update(r.Context(), user.Username, contactID, service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contact)
}

// Delete handles the DELETE /api/contacts/{contactId} endpoint.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := handleUserAndPathID(w, r, "contactId")
	if !ok {
		return
	}

	if err := h.contactService.Remove(r.Context(), user.Username, contactID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Search handles the GET /api/contacts endpoint. Filters, page and size come
// from the query string; page defaults to 1 and size to 10.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	page, err := queryInt(r, "page", defaultSearchPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	size, err := queryInt(r, "size", defaultSearchSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req := SearchContactsRequest{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
		Page:  page,
		Size:  size,
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, newValidationError(err), "")
		return
	}

	contacts, paging, err := h.contactService.Search(r.Context(), user.Username, service.SearchContactsInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// An empty page still serializes as [] rather than null.
	if contacts == nil {
		contacts = []*domain.Contact{}
	}

	shared.RespondWithPage(w, r, http.StatusOK, contacts, paging)
}
