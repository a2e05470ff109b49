package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
	"github.com/accountability-atlas/user-service/internal/token"
)

// AuthResult carries everything a successful login returns. RefreshToken
// is the raw secret; it is handed out exactly once and never persisted.
type AuthResult struct {
	User         model.User
	AccessToken  string
	RefreshToken string
}

// Auth orchestrates login, logout and the refresh flow.
type Auth struct {
	users      model.UserStore
	sessions   model.SessionStore
	hasher     model.PasswordHasher
	signer     model.TokenSigner
	refreshTTL time.Duration
	logger     *logger.Logger
}

func NewAuth(
	users model.UserStore,
	sessions model.SessionStore,
	hasher model.PasswordHasher,
	signer model.TokenSigner,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		signer:     signer,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Login checks credentials, opens a refresh session, and issues an access
// token bound to it. An unknown email and a wrong password are
// indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password, deviceInfo, ipAddress string) (AuthResult, error) {
	normalized := model.NormalizeEmail(email)

	a.logger.Debug("Auth service: login attempt", "email", normalized)

	user, err := a.users.GetByEmail(ctx, normalized)
	if errors.Is(err, model.ErrNotFound) {
		return AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == "" {
		// OAuth-only account; no password to check against.
		return AuthResult{}, model.ErrInvalidCredentials
	}

	if err := a.hasher.Compare(password, user.PasswordHash); err != nil {
		return AuthResult{}, model.ErrInvalidCredentials
	}

	refreshSecret, err := token.GenerateRefreshSecret()
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to generate refresh secret: %w", err)
	}

	now := time.Now()
	session := model.Session{
		ID:               uuid.New(),
		UserID:           user.ID,
		RefreshTokenHash: token.HashRefreshSecret(refreshSecret),
		DeviceInfo:       deviceInfo,
		IPAddress:        ipAddress,
		CreatedAt:        now,
		ExpiresAt:        now.Add(a.refreshTTL),
	}

	if _, err := a.sessions.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", user.ID,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := a.signer.Issue(user.ID, user.Email, user.TrustTier, session.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"user_id", user.ID,
		"session_id", session.ID)

	return AuthResult{User: user, AccessToken: accessToken, RefreshToken: refreshSecret}, nil
}

// Logout revokes the session by id. Revoking an already-revoked or unknown
// session is not an error.
func (a *Auth) Logout(ctx context.Context, sessionID uuid.UUID) error {
	affected, err := a.sessions.RevokeByID(ctx, sessionID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: logout", "session_id", sessionID, "revoked", affected)
	return nil
}

// Refresh exchanges a presented refresh secret for a fresh access token.
// The session stays open; only its hash ever touches storage.
func (a *Auth) Refresh(ctx context.Context, refreshSecret string) (string, error) {
	hash := token.HashRefreshSecret(refreshSecret)

	session, err := a.sessions.GetValidByRefreshHash(ctx, hash, time.Now())
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session by refresh hash: %w", err)
	}

	user, err := a.users.GetByID(ctx, session.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session user: %w", err)
	}

	accessToken, err := a.signer.Issue(user.ID, user.Email, user.TrustTier, session.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// RevokeAll revokes every valid session of a user, e.g. on a security
// event. Returns the number of sessions revoked.
func (a *Auth) RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	affected, err := a.sessions.RevokeAllForUser(ctx, userID, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	a.logger.Info("Auth service: revoked all sessions", "user_id", userID, "revoked", affected)
	return affected, nil
}
