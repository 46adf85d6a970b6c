package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    AccountType
		wantErr bool
	}{
		{input: "savings", want: AccountTypeSavings},
		{input: "current", want: AccountTypeCurrent},
		{input: "fixed_deposit", want: AccountTypeFixedDeposit},
		{input: "recurring_deposit", want: AccountTypeRecurringDeposit},
		{input: "checking", wantErr: true},
		{input: "Savings", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAccountType) {
					t.Errorf("ParseAccountType(%q) error = %v, want ErrInvalidAccountType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAccountType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAccountType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCreateAccountRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAccountRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  CreateAccountRequest{CustomerID: 1, AccountType: "savings", InitialBalance: 100},
		},
		{
			name: "zero opening balance is allowed",
			req:  CreateAccountRequest{CustomerID: 1, AccountType: "current"},
		},
		{
			name:    "unknown type",
			req:     CreateAccountRequest{CustomerID: 1, AccountType: "offshore"},
			wantErr: ErrInvalidAccountType,
		},
		{
			name:    "negative opening balance",
			req:     CreateAccountRequest{CustomerID: 1, AccountType: "savings", InitialBalance: -0.01},
			wantErr: ErrNegativeInitialBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccountClosed(t *testing.T) {
	a := Account{}
	if a.Closed() {
		t.Error("account without close date must report open")
	}

	now := time.Now()
	a.CloseDate = &now
	if !a.Closed() {
		t.Error("account with close date must report closed")
	}
}
