package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/eirikmo/fossbank/internal/model"
)

// LoanLedger owns the loan lifecycle: sanctioning, monthly interest
// accrual, repayment amortization, and closure.
type LoanLedger struct {
	loans     LoanRepository
	payments  LoanPaymentRepository
	customers CustomerRepository
	locks     *keyedMutex
}

// NewLoanLedger creates a new LoanLedger
func NewLoanLedger(loans LoanRepository, payments LoanPaymentRepository, customers CustomerRepository) *LoanLedger {
	return &LoanLedger{
		loans:     loans,
		payments:  payments,
		customers: customers,
		locks:     newKeyedMutex(),
	}
}

// CreateLoan sanctions a loan for an existing customer. The outstanding
// balance always starts equal to the sanctioned amount; it is never
// supplied independently.
func (l *LoanLedger) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (*model.Loan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := l.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	loanType, _ := model.ParseLoanType(req.LoanType)

	openDate := time.Now()
	if req.OpenDate != nil {
		openDate = *req.OpenDate
	}

	loan := &model.Loan{
		CustomerID:       req.CustomerID,
		LoanType:         loanType,
		AmountSanctioned: req.AmountSanctioned,
		Balance:          req.AmountSanctioned,
		InterestRate:     req.InterestRate,
		OpenDate:         openDate,
	}

	id, err := l.loans.Create(ctx, loan)
	if err != nil {
		return nil, err
	}
	loan.ID = id

	return loan, nil
}

// ApplyMonthlyInterest accrues one month of interest onto the outstanding
// balance. Unlike account interest, loan accrual writes no audit record;
// the legacy system only ever adjusted the balance.
func (l *LoanLedger) ApplyMonthlyInterest(ctx context.Context, loanID int64) (float64, error) {
	unlock := l.locks.lock(loanID)
	defer unlock()

	loan, err := l.loans.GetByID(ctx, loanID)
	if err != nil {
		return 0, err
	}

	if loan.InterestRate <= 0 {
		return 0, model.ErrInterestRateNotSet
	}

	monthlyRate := loan.InterestRate / 12 / 100
	interest := loan.Balance * monthlyRate
	if interest <= 0 {
		return 0, model.ErrNoInterestAccrued
	}

	loan.Balance += interest
	if err := l.loans.Update(ctx, loan); err != nil {
		return 0, err
	}

	return interest, nil
}

// ApplyMonthlyInterestToAll accrues monthly interest on every active loan,
// skipping closed ones. The first failure aborts the run; success requires
// every active loan to have been updated and at least one active loan to
// exist. This abort-on-error behavior deliberately differs from the
// account-side batch, which tolerates per-account failures.
func (l *LoanLedger) ApplyMonthlyInterestToAll(ctx context.Context) (int, error) {
	loans, err := l.loans.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	active := 0
	for _, loan := range loans {
		if loan.Closed() {
			continue
		}
		active++

		if _, err := l.ApplyMonthlyInterest(ctx, loan.ID); err != nil {
			return applied, fmt.Errorf("interest accrual aborted at loan %d: %w", loan.ID, err)
		}
		applied++
	}

	if active == 0 {
		return 0, model.ErrNoActiveLoans
	}

	return applied, nil
}

// RecordPayment applies a repayment against the outstanding balance and
// appends the payment record. Paying the balance down to exactly zero
// closes the loan. A payment overshooting the balance by more than the
// floating-point tolerance is rejected; an overshoot within tolerance is
// clamped to zero.
//
// The loan update commits before the payment record is appended; a failed
// append is reported as operation failure without reversing the balance.
func (l *LoanLedger) RecordPayment(ctx context.Context, loanID int64, req model.RecordPaymentRequest) (*model.LoanPayment, error) {
	if req.Amount <= 0 {
		return nil, model.ErrAmountNotPositive
	}

	unlock := l.locks.lock(loanID)
	defer unlock()

	loan, err := l.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	newBalance := loan.Balance - req.Amount
	if newBalance < -zeroTolerance {
		return nil, model.ErrOverpayment
	}
	if newBalance < 0 {
		newBalance = 0
	}

	loan.Balance = newBalance
	if newBalance == 0 {
		now := time.Now()
		loan.CloseDate = &now
	}

	if err := l.loans.Update(ctx, loan); err != nil {
		return nil, err
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := &model.LoanPayment{
		LoanID:             loanID,
		DisbursementAmount: req.Amount,
		ReceiptNo:          req.ReceiptNo,
		PaymentDate:        paymentDate,
		RemainingBalance:   newBalance,
	}

	id, err := l.payments.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("loan balance committed but payment record failed: %w", err)
	}
	payment.ID = id

	return payment, nil
}

// DeleteLoan removes a loan. Only positive balances block deletion; the
// overpayment guard keeps negative balances from occurring.
func (l *LoanLedger) DeleteLoan(ctx context.Context, loanID int64) error {
	unlock := l.locks.lock(loanID)
	defer unlock()

	loan, err := l.loans.GetByID(ctx, loanID)
	if err != nil {
		return err
	}

	if loan.Balance > 0 {
		return model.ErrLoanOutstanding
	}

	return l.loans.Delete(ctx, loanID)
}

// MonthlyEMI computes the equated monthly installment amortizing a
// principal over the tenure at the given annual rate. Pure function,
// no state touched.
func MonthlyEMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if tenureMonths <= 0 {
		return 0, model.ErrInvalidTenure
	}

	if annualRatePercent == 0 {
		return principal / float64(tenureMonths), nil
	}

	monthlyRate := annualRatePercent / 12 / 100
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	return principal * monthlyRate * factor / (factor - 1), nil
}
