package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eirikmo/fossbank/internal/ledger"
	"github.com/eirikmo/fossbank/internal/model"
)

// AccountHandler handles HTTP requests for accounts and money movement
type AccountHandler struct {
	ledger       *ledger.AccountLedger
	accounts     ledger.AccountRepository
	transactions ledger.TransactionRepository
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(l *ledger.AccountLedger, accounts ledger.AccountRepository, transactions ledger.TransactionRepository) *AccountHandler {
	return &AccountHandler{ledger: l, accounts: accounts, transactions: transactions}
}

// RegisterRoutes sets up the account routes on the given router
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/transactions", h.ListTransactions)
		r.Post("/{id}/deposit", h.Deposit)
		r.Post("/{id}/withdraw", h.Withdraw)
		r.Post("/{id}/interest", h.ApplyInterest)
		r.Post("/{id}/close", h.Close)
	})
	r.Post("/transfers", h.Transfer)
}

// Create handles POST /accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.ledger.CreateAccount(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// List handles GET /accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if accounts == nil {
		accounts = []model.Account{}
	}

	writeJSON(w, http.StatusOK, accounts)
}

// GetByID handles GET /accounts/{id}
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// Delete handles DELETE /accounts/{id}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	if err := h.ledger.DeleteAccount(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTransactions handles GET /accounts/{id}/transactions
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	if _, err := h.accounts.GetByID(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	transactions, err := h.transactions.GetByAccountID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}

	writeJSON(w, http.StatusOK, transactions)
}

// Deposit handles POST /accounts/{id}/deposit
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.mutateBalance(w, r, h.ledger.Deposit)
}

// Withdraw handles POST /accounts/{id}/withdraw
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.mutateBalance(w, r, h.ledger.Withdraw)
}

// ApplyInterest handles POST /accounts/{id}/interest
func (h *AccountHandler) ApplyInterest(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	interest, err := h.ledger.ApplyInterest(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"account_id": id,
		"interest":   interest,
		"balance":    account.Balance,
	})
}

// Close handles POST /accounts/{id}/close
func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	account, err := h.ledger.CloseAccount(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// Transfer handles POST /transfers
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ledger.Transfer(r.Context(), req); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"from_account_id": req.FromAccountID,
		"to_account_id":   req.ToAccountID,
		"amount":          req.Amount,
	})
}

// mutateBalance is the shared deposit/withdraw path: parse id and amount,
// run the ledger operation, return the updated account.
func (h *AccountHandler) mutateBalance(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, accountID int64, amount float64) (*model.Account, error)) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	var req model.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := op(r.Context(), id, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}
