// Package api is the typed client for the remote business API. All business
// state (customers, debts, gallery, contact messages) lives behind that API;
// this package only moves it over the wire.
//
// Two client variants share one Transport: Public never sends credentials and
// serves the visitor-facing pages, Admin attaches the bearer token on every
// request and tears the local session down when the server rejects it.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport holds the base URL and HTTP client shared by both variants.
type Transport struct {
	baseURL string
	client  *http.Client
}

// NewTransport creates a Transport for the given API base URL, e.g.
// "http://127.0.0.1:8000/api".
func NewTransport(baseURL string) *Transport {
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *Transport) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType, bearer string) (*http.Response, error) {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// Public is the unauthenticated client variant. It never attaches an
// Authorization header, so the visitor-facing calls behave the same whether
// or not an admin session exists.
type Public struct {
	t *Transport
}

// NewPublic creates the public client variant.
func NewPublic(t *Transport) *Public { return &Public{t: t} }

func (c *Public) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	resp, err := c.t.roundTrip(ctx, method, path, query, body, contentType, "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func (c *Public) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, strings.NewReader(string(body)), "application/json", out)
}

// TokenSource supplies the bearer token for admin calls and is told when the
// server no longer accepts it.
type TokenSource interface {
	// AccessToken returns the current access token, or "" when there is none.
	AccessToken() string
	// Invalidate discards the stored session. Called once per rejected
	// request; the failed call still returns ErrUnauthorized to its caller.
	Invalidate()
}

// Admin is the authenticated client variant. Every request carries
// "Authorization: Bearer <token>"; a 401 response invalidates the token
// source and fails with ErrUnauthorized. There is no retry and no token
// refresh, a single 401 is terminal for the session.
type Admin struct {
	t      *Transport
	tokens TokenSource
}

// NewAdmin creates the authenticated client variant on top of t.
func NewAdmin(t *Transport, tokens TokenSource) *Admin {
	return &Admin{t: t, tokens: tokens}
}

func (c *Admin) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	resp, err := c.t.roundTrip(ctx, method, path, query, body, contentType, c.tokens.AccessToken())
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		c.tokens.Invalidate()
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	return decodeResponse(resp, out)
}

func (c *Admin) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Admin) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

// list is the paginated envelope returned by every collection endpoint.
// Only the first page is read; pagination is not followed.
type list[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// boolQuery encodes an optional boolean filter ("true"/"false") the way the
// API expects; a nil pointer means no filter.
func boolQuery(key string, b *bool) url.Values {
	if b == nil {
		return nil
	}
	q := url.Values{}
	if *b {
		q.Set(key, "true")
	} else {
		q.Set(key, "false")
	}
	return q
}
