package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// VerificationReadRepository provides read access to verification tokens.
type VerificationReadRepository struct {
	db *sqlx.DB
}

// NewVerificationReadRepository creates a new VerificationReadRepository.
func NewVerificationReadRepository(db *sqlx.DB) *VerificationReadRepository {
	return &VerificationReadRepository{db: db}
}

// GetByToken returns the verification record for the token, or nil if unknown.
func (r *VerificationReadRepository) GetByToken(ctx context.Context, token uuid.UUID) (*models.VerificationDB, error) {
	const query = `
		SELECT token, user_id, verified, expiry_time, created_at
		FROM user_verifications
		WHERE token = $1
	`

	var verification models.VerificationDB
	err := r.db.GetContext(ctx, &verification, query, token)

	logger.Log.Infow("verification query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{token},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

// VerificationWriteRepository provides write access to verification tokens.
type VerificationWriteRepository struct {
	db *sqlx.DB
}

// NewVerificationWriteRepository creates a new VerificationWriteRepository.
func NewVerificationWriteRepository(db *sqlx.DB) *VerificationWriteRepository {
	return &VerificationWriteRepository{db: db}
}

// Save persists a new pending verification token.
func (r *VerificationWriteRepository) Save(ctx context.Context, token, userID uuid.UUID, expiryTime time.Time) error {
	const query = `
		INSERT INTO user_verifications (token, user_id, verified, expiry_time, created_at)
		VALUES ($1, $2, FALSE, $3, NOW())
	`
	args := []any{token, userID, expiryTime}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("verification insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{token, userID, expiryTime},
		"error", err,
	)

	return err
}

// MarkVerified flips the token's and the user's verified flags in a single
// transaction, so the two rows can never disagree.
func (r *VerificationWriteRepository) MarkVerified(ctx context.Context, token, userID uuid.UUID) error {
	const tokenQuery = `
		UPDATE user_verifications
		SET verified = TRUE
		WHERE token = $1
	`
	const userQuery = `
		UPDATE users
		SET verified = TRUE, updated_at = NOW()
		WHERE user_id = $1
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin verification transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tokenQuery, token); err != nil {
		logger.Log.Errorw("failed to mark token verified", "token", token, "error", err)
		return err
	}
	if _, err := tx.ExecContext(ctx, userQuery, userID); err != nil {
		logger.Log.Errorw("failed to mark user verified", "user_id", userID, "error", err)
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("verification commit",
		"token", token,
		"user_id", userID,
		"error", err,
	)

	return err
}
