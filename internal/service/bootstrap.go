package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
)

const adminDisplayName = "Admin"

// Bootstrap seeds the admin account at startup.
type Bootstrap struct {
	users  model.UserStore
	logger *logger.Logger
}

func NewBootstrap(users model.UserStore, logger *logger.Logger) *Bootstrap {
	return &Bootstrap{users: users, logger: logger}
}

// EnsureAdmin creates an ADMIN user with the pre-hashed credential when
// both values are configured and no user with that email exists yet.
// Idempotent across restarts.
func (b *Bootstrap) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	if email == "" || passwordHash == "" {
		b.logger.Info("Bootstrap: admin email or password hash not set, skipping admin seeding")
		return nil
	}

	normalized := model.NormalizeEmail(email)

	exists, err := b.users.ExistsByEmail(ctx, normalized)
	if err != nil {
		return fmt.Errorf("failed to check admin existence: %w", err)
	}
	if exists {
		b.logger.Info("Bootstrap: admin account already exists", "email", normalized)
		return nil
	}

	now := time.Now()
	admin := model.User{
		ID:            uuid.New(),
		Email:         normalized,
		EmailVerified: true,
		PasswordHash:  passwordHash,
		DisplayName:   adminDisplayName,
		TrustTier:     model.TrustTierAdmin,
		CreatedAt:     now,
	}

	if _, err := b.users.Create(ctx, admin, model.UserStats{UpdatedAt: now}); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	b.logger.Info("Bootstrap: admin account created", "email", normalized)
	return nil
}
