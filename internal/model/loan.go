package model

import "time"

// LoanType represents the product category of a loan
type LoanType string

const (
	LoanTypePersonal LoanType = "personal_loan"
	LoanTypeHome     LoanType = "home_loan"
	LoanTypeVehicle  LoanType = "vehicle_loan"
	LoanTypeGold     LoanType = "gold_loan"
)

// ParseLoanType maps a stored string onto the closed set of loan types
func ParseLoanType(s string) (LoanType, error) {
	switch LoanType(s) {
	case LoanTypePersonal, LoanTypeHome, LoanTypeVehicle, LoanTypeGold:
		return LoanType(s), nil
	}
	return "", ErrInvalidLoanType
}

// Loan is a debt obligation owned by exactly one customer. Balance starts
// at the sanctioned amount, decreases via repayment, increases via monthly
// interest accrual, and the loan closes when it reaches exactly zero.
type Loan struct {
	ID               int64      `json:"id"`
	CustomerID       int64      `json:"customer_id"`
	LoanType         LoanType   `json:"loan_type"`
	AmountSanctioned float64    `json:"amount_sanctioned"`
	Balance          float64    `json:"balance"`
	InterestRate     float64    `json:"interest_rate"`
	OpenDate         time.Time  `json:"open_date"`
	CloseDate        *time.Time `json:"close_date,omitempty"`
}

// Closed reports whether the loan has been fully repaid and closed
func (l *Loan) Closed() bool {
	return l.CloseDate != nil
}

// LoanPayment is an immutable record of a repayment. RemainingBalance is
// the loan balance snapshot taken immediately after the payment applied.
type LoanPayment struct {
	ID                 int64     `json:"id"`
	LoanID             int64     `json:"loan_id"`
	DisbursementAmount float64   `json:"disbursement_amount"`
	ReceiptNo          string    `json:"receipt_no,omitempty"`
	PaymentDate        time.Time `json:"payment_date"`
	RemainingBalance   float64   `json:"remaining_balance"`
}

// CreateLoanRequest is the payload for sanctioning a new loan
type CreateLoanRequest struct {
	CustomerID       int64      `json:"customer_id"`
	LoanType         string     `json:"loan_type"`
	AmountSanctioned float64    `json:"amount_sanctioned"`
	InterestRate     float64    `json:"interest_rate"`
	OpenDate         *time.Time `json:"open_date,omitempty"`
}

// Validate checks if the create request is valid
func (r CreateLoanRequest) Validate() error {
	if _, err := ParseLoanType(r.LoanType); err != nil {
		return err
	}
	if r.AmountSanctioned <= 0 {
		return ErrPrincipalNotPositive
	}
	return nil
}

// RecordPaymentRequest is the payload for repaying against a loan
type RecordPaymentRequest struct {
	Amount      float64    `json:"amount"`
	ReceiptNo   string     `json:"receipt_no,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}
