package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eirikmo/fossbank/internal/ledger"
	"github.com/eirikmo/fossbank/internal/model"
)

// LoanHandler handles HTTP requests for loans and repayments
type LoanHandler struct {
	ledger   *ledger.LoanLedger
	loans    ledger.LoanRepository
	payments ledger.LoanPaymentRepository
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(l *ledger.LoanLedger, loans ledger.LoanRepository, payments ledger.LoanPaymentRepository) *LoanHandler {
	return &LoanHandler{ledger: l, loans: loans, payments: payments}
}

// RegisterRoutes sets up the loan routes on the given router
func (h *LoanHandler) RegisterRoutes(r chi.Router) {
	r.Route("/loans", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/emi", h.EMIQuote)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/payments", h.RecordPayment)
		r.Get("/{id}/payments", h.ListPayments)
		r.Post("/{id}/interest", h.ApplyInterest)
	})
}

// Create handles POST /loans
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.ledger.CreateLoan(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loan)
}

// List handles GET /loans
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if loans == nil {
		loans = []model.Loan{}
	}

	writeJSON(w, http.StatusOK, loans)
}

// GetByID handles GET /loans/{id}
func (h *LoanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan ID format")
		return
	}

	loan, err := h.loans.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loan)
}

// Delete handles DELETE /loans/{id}
func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan ID format")
		return
	}

	if err := h.ledger.DeleteLoan(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordPayment handles POST /loans/{id}/payments
func (h *LoanHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan ID format")
		return
	}

	var req model.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.ledger.RecordPayment(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

// ListPayments handles GET /loans/{id}/payments
func (h *LoanHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan ID format")
		return
	}

	if _, err := h.loans.GetByID(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	payments, err := h.payments.GetByLoanID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	if payments == nil {
		payments = []model.LoanPayment{}
	}

	writeJSON(w, http.StatusOK, payments)
}

// ApplyInterest handles POST /loans/{id}/interest
func (h *LoanHandler) ApplyInterest(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan ID format")
		return
	}

	interest, err := h.ledger.ApplyMonthlyInterest(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	loan, err := h.loans.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"loan_id":  id,
		"interest": interest,
		"balance":  loan.Balance,
	})
}

// EMIQuote handles GET /loans/emi?principal=&rate=&months=
func (h *LoanHandler) EMIQuote(w http.ResponseWriter, r *http.Request) {
	principal, rate, months, err := parseEMIQuery(r.URL.Query().Get("principal"), r.URL.Query().Get("rate"), r.URL.Query().Get("months"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	emi, err := ledger.MonthlyEMI(principal, rate, months)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"principal": principal,
		"rate":      rate,
		"months":    months,
		"emi":       emi,
	})
}

// parseEMIQuery validates the EMI quote parameters. Principal and rate must
// be non-negative numbers, months a positive integer.
func parseEMIQuery(principalStr, rateStr, monthsStr string) (float64, float64, int, error) {
	principal, err := strconv.ParseFloat(principalStr, 64)
	if err != nil || principal <= 0 {
		return 0, 0, 0, model.ErrPrincipalNotPositive
	}

	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate < 0 {
		return 0, 0, 0, model.ErrInterestRateNotSet
	}

	months, err := strconv.Atoi(monthsStr)
	if err != nil || months <= 0 {
		return 0, 0, 0, model.ErrInvalidTenure
	}

	return principal, rate, months, nil
}
