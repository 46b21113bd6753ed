// Package session issues and resolves opaque login tokens.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Session associates an opaque token with a logged-in user. Email is a
// snapshot taken at login; callers that need the live record must re-resolve
// the user by ID.
type Session struct {
	Token     string    `json:"-"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the backing for issued sessions. Implementations must be safe for
// concurrent use; every session expires when its TTL elapses.
type Store interface {
	// Create issues a fresh token for the user and records the session.
	Create(ctx context.Context, userID uint, email string) (string, error)
	// Get returns the session for token, or nil if unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes the session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
	// Close releases any background resources held by the store.
	Close() error
}

const tokenBytes = 32

// newToken returns a URL-safe token with 256 bits of entropy.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
