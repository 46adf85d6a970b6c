package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eirikmo/fossbank/internal/ledger"
	"github.com/eirikmo/fossbank/internal/queue"
)

// InterestRunHandler handles HTTP requests for batch interest accrual.
// If a publisher is set, runs are queued for the worker; otherwise they
// execute synchronously within the request.
type InterestRunHandler struct {
	accounts  *ledger.AccountLedger
	loans     *ledger.LoanLedger
	publisher *queue.Publisher // Optional: if set, uses async processing
}

// NewInterestRunHandler creates a new InterestRunHandler
func NewInterestRunHandler(accounts *ledger.AccountLedger, loans *ledger.LoanLedger, publisher *queue.Publisher) *InterestRunHandler {
	return &InterestRunHandler{accounts: accounts, loans: loans, publisher: publisher}
}

// InterestRunRequest is the payload for starting a batch interest run
type InterestRunRequest struct {
	Scope string `json:"scope"` // "accounts" or "loans"
}

// RegisterRoutes sets up the interest run routes on the given router
func (h *InterestRunHandler) RegisterRoutes(r chi.Router) {
	r.Post("/interest-runs", h.Create)
}

// Create handles POST /interest-runs
func (h *InterestRunHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req InterestRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Scope != queue.ScopeAccounts && req.Scope != queue.ScopeLoans {
		writeError(w, http.StatusBadRequest, "scope must be accounts or loans")
		return
	}

	if h.publisher != nil {
		runID, err := h.publisher.PublishRun(r.Context(), req.Scope)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"run_id": runID,
			"scope":  req.Scope,
			"status": "queued",
		})
		return
	}

	// Sync mode: run the batch within the request. The two scopes keep
	// their differing failure semantics: the account run tolerates
	// per-account failures and reports a count, the loan run aborts on
	// the first failure.
	var applied int
	var err error
	switch req.Scope {
	case queue.ScopeAccounts:
		applied, err = h.accounts.ApplyInterestToAll(r.Context())
	case queue.ScopeLoans:
		applied, err = h.loans.ApplyMonthlyInterestToAll(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"scope":   req.Scope,
		"applied": applied,
	})
}
