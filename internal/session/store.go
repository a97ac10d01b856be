package session

import (
	"context"
	"errors"
	"time"
)

var errMissingID = errors.New("session: missing id")

// TTL is the absolute lifetime of a session. Sessions are not
// renewed on activity.
const TTL = 24 * time.Hour

// Session is the per-client server-side state. Location is set by a
// location search, Username only after successful credential
// verification. Both are empty for an anonymous session.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New returns an anonymous session with a fresh token and the
// default TTL.
func New() (Session, error) {
	id, err := GenerateID()
	if err != nil {
		return Session{}, err
	}
	now := time.Now()
	return Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}, nil
}

// Expired reports whether the session has passed its absolute expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) when no session exists for the token.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
