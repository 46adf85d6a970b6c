package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eirikmo/fossbank/internal/model"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account and returns the assigned id
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) (int64, error) {
	query := `
		INSERT INTO accounts (customer_id, account_type, balance, interest_rate, open_date, close_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		account.CustomerID,
		account.AccountType,
		account.Balance,
		account.InterestRate,
		account.OpenDate,
		account.CloseDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `
		SELECT id, customer_id, account_type, balance, interest_rate, open_date, close_date
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// GetAll retrieves every account ordered by id
func (r *AccountRepository) GetAll(ctx context.Context) ([]model.Account, error) {
	query := `
		SELECT id, customer_id, account_type, balance, interest_rate, open_date, close_date
		FROM accounts
		ORDER BY id
	`

	return r.queryAccounts(ctx, query)
}

// GetByCustomerID retrieves the accounts owned by a customer
func (r *AccountRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]model.Account, error) {
	query := `
		SELECT id, customer_id, account_type, balance, interest_rate, open_date, close_date
		FROM accounts
		WHERE customer_id = $1
		ORDER BY id
	`

	return r.queryAccounts(ctx, query, customerID)
}

// Update persists the mutable fields of an account
func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts
		SET account_type = $1, balance = $2, interest_rate = $3, open_date = $4, close_date = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query,
		account.AccountType,
		account.Balance,
		account.InterestRate,
		account.OpenDate,
		account.CloseDate,
		account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account by id
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

func (r *AccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]model.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, nil
}

// scanAccount maps one row onto an Account, rejecting unknown stored
// account types at the boundary instead of passing them through.
func scanAccount(row pgx.Row) (*model.Account, error) {
	account := &model.Account{}
	var accountType string
	err := row.Scan(
		&account.ID,
		&account.CustomerID,
		&accountType,
		&account.Balance,
		&account.InterestRate,
		&account.OpenDate,
		&account.CloseDate,
	)
	if err != nil {
		return nil, err
	}

	account.AccountType, err = model.ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}

	return account, nil
}
