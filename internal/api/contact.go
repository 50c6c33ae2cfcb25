package api

import (
	"context"
	"fmt"
	"net/http"
)

// ContactMessage is a visitor message as the API serializes it.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NewContactMessage is the visitor form payload. Name, email and message are
// required; phone is optional.
type NewContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// CreateContactMessage submits the public contact form. No authentication.
func (c *Public) CreateContactMessage(ctx context.Context, in NewContactMessage) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.postJSON(ctx, "/contact/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContactMessages returns the first page of the inbox, optionally
// filtered by read state on the server.
func (c *Admin) ListContactMessages(ctx context.Context, isRead *bool) ([]ContactMessage, error) {
	var out list[ContactMessage]
	if err := c.getJSON(ctx, "/contact/", boolQuery("is_read", isRead), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetContactMessage fetches a single message.
func (c *Admin) GetContactMessage(ctx context.Context, id int64) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/contact/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkContactMessageRead marks a message read via its sub-resource. The
// operation is idempotent on the server; calling it for an already-read
// message succeeds and changes nothing.
func (c *Admin) MarkContactMessageRead(ctx context.Context, id int64) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/contact/%d/mark_as_read/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContactMessage removes a message. No response body.
func (c *Admin) DeleteContactMessage(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contact/%d/", id), nil, nil, "", nil)
}
