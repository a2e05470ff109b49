package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/accountability-atlas/user-service/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const uniqueViolationCode = "23505"

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, email, email_verified, COALESCE(password_hash, ''), display_name,
			  COALESCE(avatar_url, ''), trust_tier, created_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.EmailVerified, &user.PasswordHash, &user.DisplayName,
		&user.AvatarURL, &user.TrustTier, &user.CreatedAt,
	)
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Create inserts the user and its stats row in one transaction. The unique
// index on email is the true duplicate guard; a violation surfaces as
// model.ErrEmailAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user model.User, stats model.UserStats) (model.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	userQuery := `INSERT INTO users (id, email, email_verified, password_hash, display_name, avatar_url, trust_tier, created_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
			  RETURNING ` + userColumns

	savedUser, err := scanUser(tx.QueryRow(ctx, userQuery,
		user.ID, user.Email, user.EmailVerified, user.PasswordHash, user.DisplayName,
		user.AvatarURL, user.TrustTier, user.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.User{}, model.ErrEmailAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	statsQuery := `INSERT INTO user_stats (user_id, submission_count, approved_count, rejected_count, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, statsQuery,
		savedUser.ID, stats.SubmissionCount, stats.ApprovedCount, stats.RejectedCount, stats.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.User{}, fmt.Errorf("failed to commit user creation: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users
			  SET email_verified = $2, display_name = $3, avatar_url = NULLIF($4, ''), trust_tier = $5
			  WHERE id = $1
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.EmailVerified, user.DisplayName, user.AvatarURL, user.TrustTier,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetStats(ctx context.Context, userID uuid.UUID) (model.UserStats, error) {
	query := `SELECT user_id, submission_count, approved_count, rejected_count, updated_at
			  FROM user_stats WHERE user_id = $1`

	var stats model.UserStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.UserID, &stats.SubmissionCount, &stats.ApprovedCount, &stats.RejectedCount, &stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserStats{}, model.ErrNotFound
		}
		return model.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}

	return stats, nil
}
