package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// ImageGetter defines the interface that the service must implement.
type ImageGetter interface {
	GetImage(ctx context.Context, userID uuid.UUID) (*models.UserImageDB, error)
}

// ImageResponse represents a profile image's metadata
// swagger:model ImageResponse
type ImageResponse struct {
	// Image ID
	ID string `json:"id"`

	// Stored file name
	FileName string `json:"fileName"`

	// MIME type
	ContentType string `json:"contentType"`

	// Size in bytes
	Size int64 `json:"size"`

	// Upload timestamp, RFC 3339
	UploadDate string `json:"uploadDate"`

	// Object location
	URL string `json:"url"`
}

func newImageResponse(image *models.UserImageDB) ImageResponse {
	return ImageResponse{
		ID:          image.ImageID.String(),
		FileName:    image.FileName,
		ContentType: image.ContentType,
		Size:        image.SizeBytes,
		UploadDate:  image.UploadDate.Format("2006-01-02T15:04:05Z07:00"),
		URL:         image.URL,
	}
}

// resolveUser maps the authenticated email to its account row. Image
// operations key off the user id, not the email.
func resolveUser(ctx context.Context, users UserGetter, w http.ResponseWriter) (*models.UserDB, bool) {
	email := middlewares.GetEmailFromContext(ctx)

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: err.Error(),
			})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
		}
		return nil, false
	}

	return user, true
}

// NewGetImageHandler returns an HTTP handler for reading the caller's profile image metadata.
// @Summary Get the authenticated user's profile image
// @Description Returns metadata and location of the caller's profile image.
// @Tags images
// @Produce json
// @Security BasicAuth
// @Success 200 {object} handlers.ImageResponse "Image metadata"
// @Failure 404 {object} handlers.ErrorResponse "User or image not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user/self/pic [get]
func NewGetImageHandler(users UserGetter, svc ImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := resolveUser(r.Context(), users, w)
		if !ok {
			return
		}

		image, err := svc.GetImage(r.Context(), user.UserID)
		if err != nil {
			switch err {
			case services.ErrImageNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newImageResponse(image))
	}
}
