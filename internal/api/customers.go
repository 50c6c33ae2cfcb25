package api

import (
	"context"
	"fmt"
	"net/http"
)

// Customer is a debt-ledger customer as the API serializes it.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// NewCustomer is the create payload. First name, last name and phone are
// required by the server; email and address are optional.
type NewCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

// ListCustomers returns the first page of customers, optionally filtered by
// the is_active flag.
func (c *Admin) ListCustomers(ctx context.Context, isActive *bool) ([]Customer, error) {
	var out list[Customer]
	if err := c.getJSON(ctx, "/customers/", boolQuery("is_active", isActive), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// CreateCustomer registers a new customer and returns the created record.
func (c *Admin) CreateCustomer(ctx context.Context, in NewCustomer) (*Customer, error) {
	var out Customer
	if err := c.sendJSON(ctx, http.MethodPost, "/customers/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CustomerDebts returns the debt records attached to one customer.
func (c *Admin) CustomerDebts(ctx context.Context, id int64) ([]Debt, error) {
	var out list[Debt]
	if err := c.getJSON(ctx, fmt.Sprintf("/customers/%d/debts/", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
