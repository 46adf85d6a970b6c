package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eirikmo/fossbank/internal/model"
)

// TransactionRepository handles database operations for the account audit
// trail. Transactions are append-only; there is no update or delete path.
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a transaction and returns the assigned id
func (r *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (account_id, type, amount, date, narration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		tx.AccountID,
		tx.Type,
		tx.Amount,
		tx.Date,
		tx.Narration,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	return id, nil
}

// GetByAccountID retrieves the transactions for one account, newest first
func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, date, narration
		FROM transactions
		WHERE account_id = $1
		ORDER BY date DESC, id DESC
	`

	return r.queryTransactions(ctx, query, accountID)
}

// GetAll retrieves every transaction, newest first
func (r *TransactionRepository) GetAll(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, date, narration
		FROM transactions
		ORDER BY date DESC, id DESC
	`

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *tx)
	}

	return transactions, nil
}

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var txType string
	err := row.Scan(
		&tx.ID,
		&tx.AccountID,
		&txType,
		&tx.Amount,
		&tx.Date,
		&tx.Narration,
	)
	if err != nil {
		return nil, err
	}

	tx.Type, err = model.ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}

	return tx, nil
}
