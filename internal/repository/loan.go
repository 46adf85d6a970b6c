package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eirikmo/fossbank/internal/model"
)

// LoanRepository handles database operations for loans
type LoanRepository struct {
	db *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository
func NewLoanRepository(db *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{db: db}
}

// Create inserts a new loan and returns the assigned id
func (r *LoanRepository) Create(ctx context.Context, loan *model.Loan) (int64, error) {
	query := `
		INSERT INTO loans (customer_id, loan_type, amount_sanctioned, balance, interest_rate, open_date, close_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		loan.CustomerID,
		loan.LoanType,
		loan.AmountSanctioned,
		loan.Balance,
		loan.InterestRate,
		loan.OpenDate,
		loan.CloseDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create loan: %w", err)
	}

	return id, nil
}

// GetByID retrieves a loan by id
func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	query := `
		SELECT id, customer_id, loan_type, amount_sanctioned, balance, interest_rate, open_date, close_date
		FROM loans
		WHERE id = $1
	`

	loan, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return loan, nil
}

// GetAll retrieves every loan ordered by id
func (r *LoanRepository) GetAll(ctx context.Context) ([]model.Loan, error) {
	query := `
		SELECT id, customer_id, loan_type, amount_sanctioned, balance, interest_rate, open_date, close_date
		FROM loans
		ORDER BY id
	`

	return r.queryLoans(ctx, query)
}

// GetByCustomerID retrieves the loans owned by a customer
func (r *LoanRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := `
		SELECT id, customer_id, loan_type, amount_sanctioned, balance, interest_rate, open_date, close_date
		FROM loans
		WHERE customer_id = $1
		ORDER BY id
	`

	return r.queryLoans(ctx, query, customerID)
}

// Update persists the mutable fields of a loan
func (r *LoanRepository) Update(ctx context.Context, loan *model.Loan) error {
	query := `
		UPDATE loans
		SET loan_type = $1, amount_sanctioned = $2, balance = $3, interest_rate = $4, open_date = $5, close_date = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(ctx, query,
		loan.LoanType,
		loan.AmountSanctioned,
		loan.Balance,
		loan.InterestRate,
		loan.OpenDate,
		loan.CloseDate,
		loan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrLoanNotFound
	}

	return nil
}

// Delete removes a loan by id
func (r *LoanRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrLoanNotFound
	}

	return nil
}

func (r *LoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *loan)
	}

	return loans, nil
}

func scanLoan(row pgx.Row) (*model.Loan, error) {
	loan := &model.Loan{}
	var loanType string
	err := row.Scan(
		&loan.ID,
		&loan.CustomerID,
		&loanType,
		&loan.AmountSanctioned,
		&loan.Balance,
		&loan.InterestRate,
		&loan.OpenDate,
		&loan.CloseDate,
	)
	if err != nil {
		return nil, err
	}

	loan.LoanType, err = model.ParseLoanType(loanType)
	if err != nil {
		return nil, err
	}

	return loan, nil
}
