package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
)

// Users provides lookups and trust-tier governance.
type Users struct {
	users     model.UserStore
	publisher model.EventPublisher
	logger    *logger.Logger
}

func NewUsers(users model.UserStore, publisher model.EventPublisher, logger *logger.Logger) *Users {
	return &Users{
		users:     users,
		publisher: publisher,
		logger:    logger,
	}
}

func (u *Users) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (u *Users) GetStats(ctx context.Context, id uuid.UUID) (model.UserStats, error) {
	stats, err := u.users.GetStats(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserStats{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}

// UpdateTrustTier moves a user to a new tier and publishes the change.
// Setting the current tier again is a no-op: no write, no event.
func (u *Users) UpdateTrustTier(ctx context.Context, id uuid.UUID, newTier model.TrustTier, reason string) (model.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	oldTier := user.TrustTier
	if oldTier == newTier {
		u.logger.Debug("User service: trust tier unchanged", "user_id", id, "tier", newTier)
		return user, nil
	}

	user.TrustTier = newTier
	saved, err := u.users.Update(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update trust tier: %w", err)
	}

	u.logger.Info("User service: trust tier updated",
		"user_id", id,
		"old_tier", oldTier,
		"new_tier", newTier,
		"reason", reason)

	event := model.UserTrustTierChanged{
		UserID:    id,
		OldTier:   oldTier,
		NewTier:   newTier,
		Reason:    model.ClassifyChangeReason(reason),
		Timestamp: time.Now(),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Error("User service: failed to publish event",
			"user_id", id,
			"error", err.Error())
	}

	return saved, nil
}
