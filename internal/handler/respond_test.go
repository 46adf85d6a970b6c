package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eirikmo/fossbank/internal/model"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: model.ErrAmountNotPositive, wantStatus: http.StatusBadRequest},
		{err: model.ErrInvalidAccountType, wantStatus: http.StatusBadRequest},
		{err: model.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{err: model.ErrCustomerNotFound, wantStatus: http.StatusNotFound},
		{err: model.ErrInsufficientFunds, wantStatus: http.StatusConflict},
		{err: model.ErrOverpayment, wantStatus: http.StatusConflict},
		{err: model.ErrCustomerHasDependents, wantStatus: http.StatusConflict},
		{err: model.ErrNoInterestAccrued, wantStatus: http.StatusUnprocessableEntity},
		{err: model.ErrNoActiveLoans, wantStatus: http.StatusUnprocessableEntity},
		{err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("respondError(%v) status = %d, want %d", tt.err, rec.Code, tt.wantStatus)
			}
		})
	}
}

// Wrapped ledger errors must keep their HTTP mapping
func TestRespondError_Wrapped(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, fmt.Errorf("interest accrual aborted at loan 3: %w", model.ErrInterestRateNotSet))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
