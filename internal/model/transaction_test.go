package model

import (
	"errors"
	"testing"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{input: "deposit", want: TransactionTypeDeposit},
		{input: "withdrawal", want: TransactionTypeWithdrawal},
		{input: "transfer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransactionType) {
					t.Errorf("ParseTransactionType(%q) error = %v, want ErrInvalidTransactionType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransactionType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransactionType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
