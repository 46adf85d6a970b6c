package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eirikmo/fossbank/internal/model"
)

// LoanPaymentRepository handles database operations for repayment records.
// Payments are append-only.
type LoanPaymentRepository struct {
	db *pgxpool.Pool
}

// NewLoanPaymentRepository creates a new LoanPaymentRepository
func NewLoanPaymentRepository(db *pgxpool.Pool) *LoanPaymentRepository {
	return &LoanPaymentRepository{db: db}
}

// Create appends a payment record and returns the assigned id
func (r *LoanPaymentRepository) Create(ctx context.Context, payment *model.LoanPayment) (int64, error) {
	query := `
		INSERT INTO loan_payments (loan_id, disbursement_amount, receipt_no, payment_date, remaining_balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		payment.LoanID,
		payment.DisbursementAmount,
		payment.ReceiptNo,
		payment.PaymentDate,
		payment.RemainingBalance,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create loan payment: %w", err)
	}

	return id, nil
}

// GetByLoanID retrieves the payments recorded against one loan, oldest first
func (r *LoanPaymentRepository) GetByLoanID(ctx context.Context, loanID int64) ([]model.LoanPayment, error) {
	query := `
		SELECT id, loan_id, disbursement_amount, receipt_no, payment_date, remaining_balance
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY payment_date, id
	`

	return r.queryPayments(ctx, query, loanID)
}

// GetAll retrieves every payment record, oldest first
func (r *LoanPaymentRepository) GetAll(ctx context.Context) ([]model.LoanPayment, error) {
	query := `
		SELECT id, loan_id, disbursement_amount, receipt_no, payment_date, remaining_balance
		FROM loan_payments
		ORDER BY payment_date, id
	`

	return r.queryPayments(ctx, query)
}

func (r *LoanPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]model.LoanPayment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	defer rows.Close()

	var payments []model.LoanPayment
	for rows.Next() {
		var payment model.LoanPayment
		err := rows.Scan(
			&payment.ID,
			&payment.LoanID,
			&payment.DisbursementAmount,
			&payment.ReceiptNo,
			&payment.PaymentDate,
			&payment.RemainingBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
