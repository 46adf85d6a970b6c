package model

import (
	"strings"
	"time"
)

// Customer is an identity record. Accounts and loans reference it by id;
// no entity holds a live reference to another.
type Customer struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address,omitempty"`
	ContactNo string    `json:"contact_no,omitempty"`
	Email     string    `json:"email"`
	PAN       string    `json:"pan,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCustomerRequest is the payload for registering a customer
type CreateCustomerRequest struct {
	FullName  string `json:"full_name"`
	Address   string `json:"address,omitempty"`
	ContactNo string `json:"contact_no,omitempty"`
	Email     string `json:"email"`
	PAN       string `json:"pan,omitempty"`
}

// Validate checks if the registration request is valid.
// The email check is deliberately lax (a single "@" is enough); the
// legacy system never validated more than that and callers depend on it.
func (r CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrNameRequired
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// UpdateContactRequest carries the mutable contact fields of a customer.
// Identity fields (name, PAN, creation time) are read-only after creation.
type UpdateContactRequest struct {
	Address   string `json:"address,omitempty"`
	ContactNo string `json:"contact_no,omitempty"`
	Email     string `json:"email"`
}

// Validate checks if the contact update is valid
func (r UpdateContactRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
