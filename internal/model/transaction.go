package model

import "time"

// TransactionType represents the direction of a balance change
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// ParseTransactionType maps a stored string onto the closed set of
// transaction types
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return TransactionType(s), nil
	}
	return "", ErrInvalidTransactionType
}

// Transaction is an immutable audit record of a balance change. Every
// successful balance-changing operation on an account appends exactly one.
type Transaction struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Date      time.Time       `json:"date"`
	Narration string          `json:"narration,omitempty"`
}

// TransferRequest is the payload for moving funds between two accounts
type TransferRequest struct {
	FromAccountID int64   `json:"from_account_id"`
	ToAccountID   int64   `json:"to_account_id"`
	Amount        float64 `json:"amount"`
}

// AmountRequest is the payload for deposits and withdrawals
type AmountRequest struct {
	Amount float64 `json:"amount"`
}
