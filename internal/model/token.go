package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is the decoded payload of a verified access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	TrustTier TrustTier
	SessionID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner issues and verifies signed access tokens and exposes the
// public half of its keypair as a JSON key set.
type TokenSigner interface {
	Issue(userID uuid.UUID, email string, tier TrustTier, sessionID uuid.UUID) (string, error)
	Parse(token string) (AccessClaims, error)
	JWKS() []byte
}
