package model

import "time"

// AccountType represents the type of bank account
type AccountType string

const (
	AccountTypeSavings          AccountType = "savings"
	AccountTypeCurrent          AccountType = "current"
	AccountTypeFixedDeposit     AccountType = "fixed_deposit"
	AccountTypeRecurringDeposit AccountType = "recurring_deposit"
)

// ParseAccountType maps a stored string onto the closed set of account
// types. Unknown values fail fast instead of round-tripping unchecked.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeFixedDeposit, AccountTypeRecurringDeposit:
		return AccountType(s), nil
	}
	return "", ErrInvalidAccountType
}

// Account is a monetary holding owned by exactly one customer.
// Balance never goes negative as a result of a successful ledger operation.
type Account struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customer_id"`
	AccountType  AccountType `json:"account_type"`
	Balance      float64     `json:"balance"`
	InterestRate float64     `json:"interest_rate"`
	OpenDate     time.Time   `json:"open_date"`
	CloseDate    *time.Time  `json:"close_date,omitempty"`
}

// Closed reports whether the account has been closed
func (a *Account) Closed() bool {
	return a.CloseDate != nil
}

// CreateAccountRequest is the payload for opening a new account
type CreateAccountRequest struct {
	CustomerID     int64      `json:"customer_id"`
	AccountType    string     `json:"account_type"`
	InitialBalance float64    `json:"initial_balance"`
	InterestRate   float64    `json:"interest_rate"`
	OpenDate       *time.Time `json:"open_date,omitempty"`
}

// Validate checks if the create request is valid
func (r CreateAccountRequest) Validate() error {
	if _, err := ParseAccountType(r.AccountType); err != nil {
		return err
	}
	if r.InitialBalance < 0 {
		return ErrNegativeInitialBalance
	}
	return nil
}
