// Package session persists the admin auth session: the token pair issued by
// the remote API plus the cached user profile. This is the only local state
// the application keeps; its absence means unauthenticated.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/colonel51/KardesLastik/internal/api"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session is one logged-in admin. Token is the local cookie value; the
// access/refresh pair belongs to the remote API and is replayed as-is.
type Session struct {
	Token        string
	AccessToken  string
	RefreshToken string
	User         api.User
	ExpiresAt    time.Time
}

// Store is the persistence boundary for sessions. It is an interface so the
// backend is swappable in tests.
type Store interface {
	// Save inserts or replaces a session.
	Save(s *Session) error
	// Get returns the unexpired session for token, or ErrNotFound.
	Get(token string) (*Session, error)
	// Delete removes a session. Deleting a missing token is not an error;
	// this is both the logout path and the 401 teardown.
	Delete(token string) error
}

// NewToken generates a fresh session cookie value.
func NewToken() string { return uuid.NewString() }
