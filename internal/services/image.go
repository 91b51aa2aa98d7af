package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
)

// Error variables
var (
	ErrImageNotFound   = errors.New("image not found")
	ErrEmptyFile       = errors.New("file cannot be empty")
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, JPG and PNG are allowed")
	ErrDuplicateImage  = errors.New("this image appears to be already uploaded")
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// ImageReader defines read-only operations for image metadata.
type ImageReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserImageDB, error)
}

// ImageWriter defines write operations for image metadata.
type ImageWriter interface {
	Save(ctx context.Context, image *models.UserImageDB) error
	Replace(ctx context.Context, oldImageID uuid.UUID, image *models.UserImageDB) error
	Delete(ctx context.Context, imageID uuid.UUID) error
}

// ImageObjectStore stores and removes image bytes in the object store.
type ImageObjectStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// ImageMetrics is the slice of the metrics collector this service records to.
type ImageMetrics interface {
	IncImageUploads()
	ObserveS3Operation(d time.Duration)
}

// ImageService owns the upload/replace/delete policy for the single per-user
// profile image. Mutations for one user are serialised by a keyed mutex.
type ImageService struct {
	reader  ImageReader
	writer  ImageWriter
	objects ImageObjectStore
	metrics ImageMetrics
	perUser *keyedMutex
}

// NewImageService creates a new ImageService instance.
func NewImageService(reader ImageReader, writer ImageWriter, objects ImageObjectStore, metrics ImageMetrics) *ImageService {
	return &ImageService{
		reader:  reader,
		writer:  writer,
		objects: objects,
		metrics: metrics,
		perUser: newKeyedMutex(),
	}
}

// GetImage returns the user's image metadata or ErrImageNotFound.
func (svc *ImageService) GetImage(ctx context.Context, userID uuid.UUID) (*models.UserImageDB, error) {
	image, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "user_id", userID, "err", err)
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}

	image.URL = svc.objectURL(image.ObjectKey)
	return image, nil
}

// UploadImage stores a new profile image for the user, replacing any existing
// one. The new object is written first; the metadata swap commits before the
// old object is removed, so a failure never leaves the metadata pointing at a
// missing object.
func (svc *ImageService) UploadImage(ctx context.Context, user *models.UserDB, fileName, contentType string, size int64, body io.Reader) (*models.UserImageDB, error) {
	svc.perUser.lock(user.UserID.String())
	defer svc.perUser.unlock(user.UserID.String())

	if size == 0 {
		logger.Log.Errorw("empty file received", "user_id", user.UserID)
		return nil, ErrEmptyFile
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		logger.Log.Errorw("invalid file type", "user_id", user.UserID, "content_type", contentType)
		return nil, ErrInvalidFileType
	}

	existing, err := svc.reader.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check existing image", "user_id", user.UserID, "err", err)
		return nil, err
	}
	if existing != nil && existing.SizeBytes == size && existing.ContentType == contentType {
		logger.Log.Warnw("duplicate image upload rejected", "user_id", user.UserID)
		return nil, ErrDuplicateImage
	}

	imageID := uuid.New()
	newFileName := imageID.String() + filepath.Ext(fileName)
	objectKey := fmt.Sprintf("users/%s/%s", user.UserID, newFileName)

	start := time.Now()
	if err := svc.objects.Put(ctx, objectKey, contentType, size, body); err != nil {
		logger.Log.Errorw("failed to upload object", "user_id", user.UserID, "key", objectKey, "err", err)
		return nil, err
	}
	svc.metrics.ObserveS3Operation(time.Since(start))

	image := &models.UserImageDB{
		ImageID:     imageID,
		UserID:      user.UserID,
		FileName:    newFileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   size,
		UploadDate:  time.Now(),
	}

	if existing != nil {
		err = svc.writer.Replace(ctx, existing.ImageID, image)
	} else {
		err = svc.writer.Save(ctx, image)
	}
	if err != nil {
		logger.Log.Errorw("failed to save image metadata", "user_id", user.UserID, "err", err)
		// The metadata commit failed, so remove the object written above.
		if delErr := svc.objects.Delete(ctx, objectKey); delErr != nil {
			logger.Log.Errorw("failed to remove staged object", "key", objectKey, "err", delErr)
		}
		return nil, err
	}

	if existing != nil {
		// Metadata is committed; the old object is now unreferenced. A delete
		// failure leaves an orphan object, never a dangling row.
		start = time.Now()
		if err := svc.objects.Delete(ctx, existing.ObjectKey); err != nil {
			logger.Log.Errorw("failed to delete replaced object", "key", existing.ObjectKey, "err", err)
		}
		svc.metrics.ObserveS3Operation(time.Since(start))
	}

	svc.metrics.IncImageUploads()

	image.URL = svc.objectURL(objectKey)
	return image, nil
}

// DeleteImage removes the user's image from both stores, metadata row first.
func (svc *ImageService) DeleteImage(ctx context.Context, userID uuid.UUID) error {
	svc.perUser.lock(userID.String())
	defer svc.perUser.unlock(userID.String())

	image, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "user_id", userID, "err", err)
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := svc.writer.Delete(ctx, image.ImageID); err != nil {
		logger.Log.Errorw("failed to delete image metadata", "user_id", userID, "err", err)
		return err
	}

	start := time.Now()
	if err := svc.objects.Delete(ctx, image.ObjectKey); err != nil {
		logger.Log.Errorw("failed to delete object", "key", image.ObjectKey, "err", err)
		return err
	}
	svc.metrics.ObserveS3Operation(time.Since(start))

	logger.Log.Infow("image deleted", "user_id", userID)
	return nil
}

func (svc *ImageService) objectURL(key string) string {
	return fmt.Sprintf("%s/%s", svc.objects.Bucket(), key)
}
