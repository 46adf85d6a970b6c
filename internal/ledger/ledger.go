// Package ledger owns the balance-mutation rules of the bank: deposits,
// withdrawals, transfers, interest accrual, and loan amortization. It talks
// to durable storage only through the repository interfaces below, so the
// core carries no SQL and tests run against in-memory fakes.
package ledger

import (
	"context"

	"github.com/eirikmo/fossbank/internal/model"
)

// zeroTolerance is the floating-point slack allowed when a loan repayment
// lands just below zero. Carried over unchanged from the legacy system.
const zeroTolerance = 0.001

// CustomerRepository is the storage contract for customers
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error
}

// AccountRepository is the storage contract for accounts
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetAll(ctx context.Context) ([]model.Account, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]model.Account, error)
	Update(ctx context.Context, a *model.Account) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository is the storage contract for the account audit trail.
// Transactions are append-only; there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) (int64, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]model.Transaction, error)
	GetAll(ctx context.Context) ([]model.Transaction, error)
}

// LoanRepository is the storage contract for loans
type LoanRepository interface {
	Create(ctx context.Context, l *model.Loan) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Loan, error)
	GetAll(ctx context.Context) ([]model.Loan, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error)
	Update(ctx context.Context, l *model.Loan) error
	Delete(ctx context.Context, id int64) error
}

// LoanPaymentRepository is the storage contract for repayment records.
// Payments are append-only.
type LoanPaymentRepository interface {
	Create(ctx context.Context, p *model.LoanPayment) (int64, error)
	GetByLoanID(ctx context.Context, loanID int64) ([]model.LoanPayment, error)
	GetAll(ctx context.Context) ([]model.LoanPayment, error)
}
