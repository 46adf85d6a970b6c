package ledger

import (
	"context"
	"time"

	"github.com/eirikmo/fossbank/internal/model"
)

// CustomerRegistry owns customer validation and lifecycle rules
type CustomerRegistry struct {
	customers CustomerRepository
	accounts  AccountRepository
	loans     LoanRepository
}

// NewCustomerRegistry creates a new CustomerRegistry
func NewCustomerRegistry(customers CustomerRepository, accounts AccountRepository, loans LoanRepository) *CustomerRegistry {
	return &CustomerRegistry{
		customers: customers,
		accounts:  accounts,
		loans:     loans,
	}
}

// CreateCustomer registers a customer after validation
func (r *CustomerRegistry) CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FullName:  req.FullName,
		Address:   req.Address,
		ContactNo: req.ContactNo,
		Email:     req.Email,
		PAN:       req.PAN,
		CreatedAt: time.Now(),
	}

	id, err := r.customers.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id

	return customer, nil
}

// UpdateContact replaces the mutable contact fields of a customer.
// Identity fields stay untouched.
func (r *CustomerRegistry) UpdateContact(ctx context.Context, id int64, req model.UpdateContactRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := r.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Address = req.Address
	customer.ContactNo = req.ContactNo
	customer.Email = req.Email

	if err := r.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Deletion is blocked while any account
// or loan still references the customer; the legacy system only noted this
// rule in a comment, here it is enforced.
func (r *CustomerRegistry) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := r.customers.GetByID(ctx, id); err != nil {
		return err
	}

	accounts, err := r.accounts.GetByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return model.ErrCustomerHasDependents
	}

	loans, err := r.loans.GetByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if len(loans) > 0 {
		return model.ErrCustomerHasDependents
	}

	return r.customers.Delete(ctx, id)
}
