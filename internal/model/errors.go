package model

import "errors"

var (
	// Validation errors
	ErrAmountNotPositive      = errors.New("amount must be positive")
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
	ErrPrincipalNotPositive   = errors.New("sanctioned amount must be positive")
	ErrInterestRateNotSet     = errors.New("interest rate is not set or zero")
	ErrInvalidTenure          = errors.New("tenure must be at least one month")
	ErrNameRequired           = errors.New("full name cannot be empty")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidAccountType     = errors.New("invalid account type: must be savings, current, fixed_deposit, or recurring_deposit")
	ErrInvalidLoanType        = errors.New("invalid loan type: must be personal_loan, home_loan, vehicle_loan, or gold_loan")
	ErrInvalidTransactionType = errors.New("invalid transaction type: must be deposit or withdrawal")

	// Not found errors
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Business rule errors
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrOverpayment           = errors.New("payment exceeds remaining loan balance")
	ErrNoInterestAccrued     = errors.New("calculated interest is zero")
	ErrBalanceNotZero        = errors.New("account balance must be zero")
	ErrLoanOutstanding       = errors.New("loan has an outstanding balance")
	ErrCustomerHasDependents = errors.New("customer has active accounts or loans")
	ErrNoActiveLoans         = errors.New("no active loans to accrue interest on")
)
