package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users and their stats.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create persists the user together with its stats row in a single
	// transaction. A unique-constraint violation on email is reported as
	// ErrEmailAlreadyExists.
	Create(ctx context.Context, user User, stats UserStats) (User, error)
	Update(ctx context.Context, user User) (User, error)
	GetStats(ctx context.Context, userID uuid.UUID) (UserStats, error)
}

// User represents a stored identity record. PasswordHash is empty for
// OAuth-only accounts.
type User struct {
	ID            uuid.UUID
	Email         string
	EmailVerified bool
	PasswordHash  string
	DisplayName   string
	AvatarURL     string
	TrustTier     TrustTier
	CreatedAt     time.Time
}

// UserStats is the 1:1 companion of User; counters default to zero.
type UserStats struct {
	UserID          uuid.UUID
	SubmissionCount int
	ApprovedCount   int
	RejectedCount   int
	UpdatedAt       time.Time
}

// TrustTier classifies user standing. The set is closed; free-form input
// goes through ParseTrustTier.
type TrustTier string

const (
	TrustTierNew     TrustTier = "NEW"
	TrustTierTrusted TrustTier = "TRUSTED"
	TrustTierAdmin   TrustTier = "ADMIN"
)

// ParseTrustTier maps a string to a TrustTier, case-insensitively.
func ParseTrustTier(s string) (TrustTier, error) {
	switch TrustTier(strings.ToUpper(s)) {
	case TrustTierNew:
		return TrustTierNew, nil
	case TrustTierTrusted:
		return TrustTierTrusted, nil
	case TrustTierAdmin:
		return TrustTierAdmin, nil
	}
	return "", fmt.Errorf("unknown trust tier %q", s)
}

// NormalizeEmail lower-cases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
