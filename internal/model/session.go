package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists refresh-bound sessions. Revocation is expressed as
// a conditional update so concurrent double-revocation is a safe no-op;
// both revoke operations return the number of rows affected.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetValidByRefreshHash(ctx context.Context, hash string, now time.Time) (Session, error)
	RevokeByID(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}

// Session represents one authenticated device/login. Only the hash of the
// refresh secret is ever stored; revoked and expired rows are retained for
// audit, never deleted.
type Session struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RefreshTokenHash string
	DeviceInfo       string
	IPAddress        string
	CreatedAt        time.Time
	ExpiresAt        time.Time
	RevokedAt        *time.Time
}

// Valid reports whether the session can still be exchanged for tokens.
func (s Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
