package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eirikmo/fossbank/internal/model"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer and returns the assigned id
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) (int64, error) {
	query := `
		INSERT INTO customers (full_name, address, contact_no, email, pan, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		customer.FullName,
		customer.Address,
		customer.ContactNo,
		customer.Email,
		customer.PAN,
		customer.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	return id, nil
}

// GetByID retrieves a customer by id
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		SELECT id, full_name, address, contact_no, email, pan, created_at
		FROM customers
		WHERE id = $1
	`

	customer := &model.Customer{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Address,
		&customer.ContactNo,
		&customer.Email,
		&customer.PAN,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetAll retrieves every customer ordered by id
func (r *CustomerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, full_name, address, contact_no, email, pan, created_at
		FROM customers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var customer model.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Address,
			&customer.ContactNo,
			&customer.Email,
			&customer.PAN,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// Update persists the mutable fields of a customer
func (r *CustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `
		UPDATE customers
		SET full_name = $1, address = $2, contact_no = $3, email = $4, pan = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query,
		customer.FullName,
		customer.Address,
		customer.ContactNo,
		customer.Email,
		customer.PAN,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer by id
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}

	return nil
}
