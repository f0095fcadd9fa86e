package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserReadRepository reads user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `user_id, full_name, email, password_hash, institution,
	reset_token_hash, reset_token_expires_at, created_at, updated_at`

// GetByEmail returns the user with the given (already normalized) email,
// or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository mutates user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. The unique index on email is the authority on
// duplicates: a conflicting insert affects no rows and is reported via the
// second return value rather than as an error.
func (r *UserWriteRepository) Save(ctx context.Context, fullName, email, passwordHash, institution string) (uuid.UUID, bool, error) {
	query := `
		INSERT INTO users (user_id, full_name, email, password_hash, institution, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING user_id
	`
	userID := uuid.New()
	args := []any{userID, fullName, email, passwordHash, institution}

	var inserted uuid.UUID
	err := r.db.GetContext(ctx, &inserted, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, fullName, email, institution},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	return inserted, true, nil
}

// SetResetToken stores the hash and expiry of a freshly issued reset token.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, email, tokenHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_token_hash = $2,
		    reset_token_expires_at = $3,
		    updated_at = NOW()
		WHERE email = $1
	`
	args := []any{email, tokenHash, expiresAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, expiresAt},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ConsumeResetToken replaces the password hash and clears the reset-token
// fields in a single guarded statement. Returns false when no user matches
// (email, token hash, unexpired) — a consumed, expired or forged token.
func (r *UserWriteRepository) ConsumeResetToken(ctx context.Context, email, tokenHash, newPasswordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $3,
		    reset_token_hash = NULL,
		    reset_token_expires_at = NULL,
		    updated_at = NOW()
		WHERE email = $1
		  AND reset_token_hash = $2
		  AND reset_token_expires_at > NOW()
	`
	args := []any{email, tokenHash, newPasswordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// UpdateEmail changes the user's email. The unique index guards against a
// concurrent registration of the same address.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	query := `
		UPDATE users
		SET email = $2,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, email}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
