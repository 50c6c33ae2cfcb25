package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// DB is the sqlite-backed Store.
type DB struct {
	conn *sql.DB
}

var _ Store = (*DB)(nil)

// NewDB opens the session database and runs migrations. Use ":memory:" in
// tests.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			user_json TEXT NOT NULL,
			expires_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

// Save inserts or replaces a session row.
func (db *DB) Save(s *Session) error {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO sessions (token, access_token, refresh_token, user_json, expires_at) VALUES (?, ?, ?, ?, ?)",
		s.Token, s.AccessToken, s.RefreshToken, string(userJSON), s.ExpiresAt.UTC(),
	)
	return err
}

// Get returns the unexpired session for token.
func (db *DB) Get(token string) (*Session, error) {
	row := db.conn.QueryRow(
		"SELECT token, access_token, refresh_token, user_json, expires_at FROM sessions WHERE token = ? AND expires_at > CURRENT_TIMESTAMP",
		token,
	)

	var s Session
	var userJSON string
	if err := row.Scan(&s.Token, &s.AccessToken, &s.RefreshToken, &userJSON, &s.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(userJSON), &s.User); err != nil {
		// Unparseable profile means no usable session.
		return nil, ErrNotFound
	}
	return &s, nil
}

// Delete removes a session by token.
func (db *DB) Delete(token string) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

// CleanExpired removes all expired sessions.
func (db *DB) CleanExpired() error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE expires_at <= CURRENT_TIMESTAMP")
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) count() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}
