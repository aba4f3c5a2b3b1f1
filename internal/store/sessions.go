package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Session is a server-side operator session. The token is the only
// credential: it is minted at login and checked on every admin request.
type Session struct {
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionStore struct {
	db *sql.DB
}

func (s *SessionStore) Create(ctx context.Context, session *Session) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	session.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO sessions (token, created_at, expires_at)
        VALUES (?, ?, ?)
    `
	_, err := s.db.ExecContext(ctx, query, session.Token, session.CreatedAt, session.ExpiresAt)
	return err
}

// Get returns the session for token, or ErrNotFound when the token is
// unknown or expired. Expired rows are deleted on sight.
func (s *SessionStore) Get(ctx context.Context, token string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT token, created_at, expires_at
        FROM sessions
        WHERE token = ?
    `
	var session Session
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.Delete(ctx, token)
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}
