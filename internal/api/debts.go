package api

import (
	"context"
	"fmt"
	"net/http"
)

// DebtType distinguishes money owed to the business from money it owes.
type DebtType string

const (
	DebtTypeDebt   DebtType = "DEBT"
	DebtTypeCredit DebtType = "CREDIT"
)

// Debt is a ledger entry as the API serializes it. Amount arrives as a
// decimal string ("150.00"); created_at and due_date are ISO timestamps.
type Debt struct {
	ID           int64    `json:"id"`
	CustomerID   int64    `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	DebtType     DebtType `json:"debt_type"`
	Amount       string   `json:"amount"`
	Description  string   `json:"description,omitempty"`
	IsPaid       bool     `json:"is_paid"`
	DueDate      string   `json:"due_date,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// DebtInput is the create/update payload. Amount is sent as a number; the
// server validates it is strictly positive.
type DebtInput struct {
	CustomerID  int64    `json:"customer_id"`
	DebtType    DebtType `json:"debt_type"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}

// ListDebts returns the first page of debt records, optionally filtered by
// payment status on the server.
func (c *Admin) ListDebts(ctx context.Context, isPaid *bool) ([]Debt, error) {
	var out list[Debt]
	if err := c.getJSON(ctx, "/debts/", boolQuery("is_paid", isPaid), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetDebt fetches a single debt record.
func (c *Admin) GetDebt(ctx context.Context, id int64) (*Debt, error) {
	var out Debt
	if err := c.getJSON(ctx, fmt.Sprintf("/debts/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDebt records a new debt; it starts unpaid.
func (c *Admin) CreateDebt(ctx context.Context, in DebtInput) (*Debt, error) {
	var out Debt
	if err := c.sendJSON(ctx, http.MethodPost, "/debts/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDebt replaces a debt record (PUT).
func (c *Admin) UpdateDebt(ctx context.Context, id int64, in DebtInput) (*Debt, error) {
	var out Debt
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/debts/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDebt removes a debt record.
func (c *Admin) DeleteDebt(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/debts/%d/", id), nil, nil, "", nil)
}

// MarkDebtPaid flips a debt to paid via its sub-resource.
func (c *Admin) MarkDebtPaid(ctx context.Context, id int64) (*Debt, error) {
	var out Debt
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/debts/%d/mark_paid/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkDebtUnpaid flips a debt back to unpaid.
func (c *Admin) MarkDebtUnpaid(ctx context.Context, id int64) (*Debt, error) {
	var out Debt
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/debts/%d/mark_unpaid/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
