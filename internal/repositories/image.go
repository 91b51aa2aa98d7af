package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// ImageReadRepository provides read access to image metadata.
type ImageReadRepository struct {
	db *sqlx.DB
}

// NewImageReadRepository creates a new ImageReadRepository.
func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByUserID returns the user's image metadata, or nil if the user has no image.
func (r *ImageReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserImageDB, error) {
	const query = `
		SELECT image_id, user_id, file_name, object_key, content_type, size_bytes, upload_date
		FROM user_images
		WHERE user_id = $1
	`

	var image models.UserImageDB
	err := r.db.GetContext(ctx, &image, query, userID)

	logger.Log.Infow("image query",
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
	return &image, nil
}

// ImageWriteRepository provides write access to image metadata.
type ImageWriteRepository struct {
	db *sqlx.DB
}

// NewImageWriteRepository creates a new ImageWriteRepository.
func NewImageWriteRepository(db *sqlx.DB) *ImageWriteRepository {
	return &ImageWriteRepository{db: db}
}

const imageInsertQuery = `
	INSERT INTO user_images (image_id, user_id, file_name, object_key, content_type, size_bytes, upload_date)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
`

// Save inserts the metadata row for a freshly uploaded image.
func (r *ImageWriteRepository) Save(ctx context.Context, image *models.UserImageDB) error {
	args := []any{image.ImageID, image.UserID, image.FileName, image.ObjectKey, image.ContentType, image.SizeBytes}

	_, err := r.db.ExecContext(ctx, imageInsertQuery, args...)

	logger.Log.Infow("image insert",
		"query", strings.Join(strings.Fields(imageInsertQuery), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Replace removes the old metadata row and inserts the new one in a single
// transaction, preserving the one-image-per-user invariant across the swap.
func (r *ImageWriteRepository) Replace(ctx context.Context, oldImageID uuid.UUID, image *models.UserImageDB) error {
	const deleteQuery = `DELETE FROM user_images WHERE image_id = $1`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin image replace transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, oldImageID); err != nil {
		logger.Log.Errorw("failed to delete old image row", "image_id", oldImageID, "error", err)
		return err
	}
	if _, err := tx.ExecContext(ctx, imageInsertQuery,
		image.ImageID, image.UserID, image.FileName, image.ObjectKey, image.ContentType, image.SizeBytes); err != nil {
		logger.Log.Errorw("failed to insert new image row", "image_id", image.ImageID, "error", err)
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("image replace commit",
		"old_image_id", oldImageID,
		"new_image_id", image.ImageID,
		"error", err,
	)

	return err
}

// Delete removes the metadata row for the given image.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID uuid.UUID) error {
	const query = `DELETE FROM user_images WHERE image_id = $1`

	_, err := r.db.ExecContext(ctx, query, imageID)

	logger.Log.Infow("image delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID},
		"error", err,
	)

	return err
}
