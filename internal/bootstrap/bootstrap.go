package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Initialize ensures the database schema exists.
// This should be called on startup after the database connection is established.
func Initialize(ctx context.Context, db *pgxpool.Pool) error {
	if err := ensureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Println("Database schema ready")
	return nil
}

// ensureSchema creates the ledger tables if they don't exist
func ensureSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			contact_no TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			pan TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			account_type TEXT NOT NULL,
			balance DOUBLE PRECISION NOT NULL DEFAULT 0,
			interest_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			open_date TIMESTAMPTZ NOT NULL,
			close_date TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			account_id BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			narration TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS loans (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			loan_type TEXT NOT NULL,
			amount_sanctioned DOUBLE PRECISION NOT NULL,
			balance DOUBLE PRECISION NOT NULL,
			interest_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			open_date TIMESTAMPTZ NOT NULL,
			close_date TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS loan_payments (
			id BIGSERIAL PRIMARY KEY,
			loan_id BIGINT NOT NULL REFERENCES loans(id) ON DELETE CASCADE,
			disbursement_amount DOUBLE PRECISION NOT NULL,
			receipt_no TEXT NOT NULL DEFAULT '',
			payment_date TIMESTAMPTZ NOT NULL,
			remaining_balance DOUBLE PRECISION NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_customer_id ON accounts(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_loans_customer_id ON loans(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_loan_payments_loan_id ON loan_payments(loan_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
