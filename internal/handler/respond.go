package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eirikmo/fossbank/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondError maps the ledger error taxonomy onto HTTP statuses:
// validation 400, missing entity 404, business-rule conflicts 409,
// would-be no-ops 422, anything else (persistence) 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrAccountNotFound),
		errors.Is(err, model.ErrLoanNotFound),
		errors.Is(err, model.ErrTransactionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrOverpayment),
		errors.Is(err, model.ErrBalanceNotZero),
		errors.Is(err, model.ErrLoanOutstanding),
		errors.Is(err, model.ErrCustomerHasDependents):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrNoInterestAccrued),
		errors.Is(err, model.ErrNoActiveLoans):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func isValidation(err error) bool {
	for _, v := range []error{
		model.ErrAmountNotPositive,
		model.ErrNegativeInitialBalance,
		model.ErrPrincipalNotPositive,
		model.ErrInterestRateNotSet,
		model.ErrInvalidTenure,
		model.ErrNameRequired,
		model.ErrInvalidEmail,
		model.ErrInvalidAccountType,
		model.ErrInvalidLoanType,
		model.ErrInvalidTransactionType,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// urlID parses the {id} route parameter as a positive integer
func urlID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
