package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/accountability-atlas/user-service/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	const query = `
        INSERT INTO sessions (id, user_id, refresh_token_hash, device_info, ip_address, created_at, expires_at)
        VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
        RETURNING id, user_id, refresh_token_hash, COALESCE(device_info, ''), COALESCE(ip_address, ''),
                  created_at, expires_at, revoked_at
    `

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	var saved model.Session
	err := r.db.QueryRow(ctx, query,
		session.ID, session.UserID, session.RefreshTokenHash, session.DeviceInfo, session.IPAddress,
		session.CreatedAt, session.ExpiresAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.RefreshTokenHash, &saved.DeviceInfo, &saved.IPAddress,
		&saved.CreatedAt, &saved.ExpiresAt, &saved.RevokedAt,
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return saved, nil
}

// GetValidByRefreshHash only matches rows that are neither revoked nor
// expired; stale rows stay in place for audit.
func (r *SessionRepository) GetValidByRefreshHash(ctx context.Context, hash string, now time.Time) (model.Session, error) {
	const query = `
        SELECT id, user_id, refresh_token_hash, COALESCE(device_info, ''), COALESCE(ip_address, ''),
               created_at, expires_at, revoked_at
        FROM sessions
        WHERE refresh_token_hash = $1 AND revoked_at IS NULL AND expires_at > $2
    `

	var session model.Session
	err := r.db.QueryRow(ctx, query, hash, now).Scan(
		&session.ID, &session.UserID, &session.RefreshTokenHash, &session.DeviceInfo, &session.IPAddress,
		&session.CreatedAt, &session.ExpiresAt, &session.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by refresh hash: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) RevokeByID(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	const query = `
        UPDATE sessions SET revoked_at = $2
        WHERE id = $1 AND revoked_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke session: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	const query = `
        UPDATE sessions SET revoked_at = $2
        WHERE user_id = $1 AND revoked_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke sessions for user: %w", err)
	}
	return tag.RowsAffected(), nil
}
