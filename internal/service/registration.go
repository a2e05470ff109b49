package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
)

// Registration orchestrates new-account creation.
type Registration struct {
	users     model.UserStore
	hasher    model.PasswordHasher
	publisher model.EventPublisher
	logger    *logger.Logger
}

func NewRegistration(
	users model.UserStore,
	hasher model.PasswordHasher,
	publisher model.EventPublisher,
	logger *logger.Logger,
) *Registration {
	return &Registration{
		users:     users,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// Register creates a user with trust tier NEW plus a zeroed stats row and
// publishes UserRegistered. The existence pre-check and the insert are not
// atomic across concurrent registrations; the unique index on email is the
// real guard and its violation also maps to ErrEmailAlreadyExists.
func (r *Registration) Register(ctx context.Context, email, password, displayName string) (model.User, error) {
	normalized := model.NormalizeEmail(email)

	r.logger.Debug("Registration service: registering user", "email", normalized)

	exists, err := r.users.ExistsByEmail(ctx, normalized)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return model.User{}, model.ErrEmailAlreadyExists
	}

	passwordHash, err := r.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        normalized,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		TrustTier:    model.TrustTierNew,
		CreatedAt:    now,
	}
	stats := model.UserStats{UpdatedAt: now}

	saved, err := r.users.Create(ctx, user, stats)
	if err != nil {
		return model.User{}, err
	}

	event := model.UserRegistered{UserID: saved.ID, Email: saved.Email, Timestamp: now}
	if err := r.publisher.Publish(ctx, event); err != nil {
		// Best-effort delivery; registration already succeeded.
		r.logger.Error("Registration service: failed to publish event",
			"user_id", saved.ID,
			"error", err.Error())
	}

	r.logger.Info("Registration service: user registered", "user_id", saved.ID)

	return saved, nil
}
