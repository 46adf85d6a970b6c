package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eirikmo/fossbank/internal/ledger"
	"github.com/eirikmo/fossbank/internal/model"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	registry  *ledger.CustomerRegistry
	customers ledger.CustomerRepository
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(registry *ledger.CustomerRegistry, customers ledger.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{registry: registry, customers: customers}
}

// RegisterRoutes sets up the customer routes on the given router
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}/contact", h.UpdateContact)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.registry.CreateCustomer(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetByID handles GET /customers/{id}
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// UpdateContact handles PUT /customers/{id}/contact
func (h *CustomerHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var req model.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.registry.UpdateContact(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := h.registry.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
