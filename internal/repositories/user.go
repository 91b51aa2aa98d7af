package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, password_hash, verified, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
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

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new unverified user and returns the persisted row.
func (r *UserWriteRepository) Save(ctx context.Context, firstName, lastName, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, password_hash, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		RETURNING user_id, first_name, last_name, email, password_hash, verified, created_at, updated_at
	`
	args := []any{firstName, lastName, email, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{firstName, lastName, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update changes the mutable fields of a user. Nil pointers leave the current
// value in place. updated_at is stamped on every call.
func (r *UserWriteRepository) Update(ctx context.Context, email string, firstName, lastName, passwordHash *string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET first_name    = COALESCE($2, first_name),
		    last_name     = COALESCE($3, last_name),
		    password_hash = COALESCE($4, password_hash),
		    updated_at    = NOW()
		WHERE email = $1
		RETURNING user_id, first_name, last_name, email, password_hash, verified, created_at, updated_at
	`
	args := []any{email, firstName, lastName, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user update",
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
