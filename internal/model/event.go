package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable fact published for other services.
type DomainEvent interface {
	EventType() string
}

// EventPublisher delivers domain events fire-and-forget. Delivery is
// best-effort: callers treat a publish failure as non-fatal to the
// triggering request.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

// UserRegistered is published once per successful registration.
type UserRegistered struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

func (UserRegistered) EventType() string { return "UserRegistered" }

// UserTrustTierChanged is published once per effective tier transition.
type UserTrustTierChanged struct {
	UserID    uuid.UUID    `json:"userId"`
	OldTier   TrustTier    `json:"oldTier"`
	NewTier   TrustTier    `json:"newTier"`
	Reason    ChangeReason `json:"reason"`
	Timestamp time.Time    `json:"timestamp"`
}

func (UserTrustTierChanged) EventType() string { return "UserTrustTierChanged" }

// ChangeReason classifies why a trust tier transition happened.
type ChangeReason string

const (
	ChangeReasonAutoPromotion ChangeReason = "AUTO_PROMOTION"
	ChangeReasonAutoDemotion  ChangeReason = "AUTO_DEMOTION"
	ChangeReasonManual        ChangeReason = "MANUAL"
)

// ClassifyChangeReason normalizes free-form reason input to the closed
// reason set. Unrecognized or empty input maps to MANUAL; this is
// intentional normalization, not data loss.
func ClassifyChangeReason(reason string) ChangeReason {
	switch ChangeReason(strings.ToUpper(reason)) {
	case ChangeReasonAutoPromotion:
		return ChangeReasonAutoPromotion
	case ChangeReasonAutoDemotion:
		return ChangeReasonAutoDemotion
	}
	return ChangeReasonManual
}
