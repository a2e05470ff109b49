// Package mocks contains hand-written testify mock objects for the store
// and publisher contracts.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/accountability-atlas/user-service/internal/model"
)

type UserStore struct {
	mock.Mock
}

var _ model.UserStore = (*UserStore)(nil)

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User, stats model.UserStats) (model.User, error) {
	args := m.Called(ctx, user, stats)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetStats(ctx context.Context, userID uuid.UUID) (model.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.UserStats), args.Error(1)
}

type SessionStore struct {
	mock.Mock
}

var _ model.SessionStore = (*SessionStore)(nil)

func (m *SessionStore) Create(ctx context.Context, session model.Session) (model.Session, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) GetValidByRefreshHash(ctx context.Context, hash string, now time.Time) (model.Session, error) {
	args := m.Called(ctx, hash, now)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *SessionStore) RevokeByID(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, id, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SessionStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

var _ model.EventPublisher = (*EventPublisher)(nil)

func (m *EventPublisher) Publish(ctx context.Context, event model.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type PasswordHasher struct {
	mock.Mock
}

var _ model.PasswordHasher = (*PasswordHasher)(nil)

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

type TokenSigner struct {
	mock.Mock
}

var _ model.TokenSigner = (*TokenSigner)(nil)

func (m *TokenSigner) Issue(userID uuid.UUID, email string, tier model.TrustTier, sessionID uuid.UUID) (string, error) {
	args := m.Called(userID, email, tier, sessionID)
	return args.String(0), args.Error(1)
}

func (m *TokenSigner) Parse(token string) (model.AccessClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.AccessClaims), args.Error(1)
}

func (m *TokenSigner) JWKS() []byte {
	args := m.Called()
	return args.Get(0).([]byte)
}
