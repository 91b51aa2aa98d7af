package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// maxUploadSize caps the multipart form memory buffer.
const maxUploadSize = 10 << 20 // 10 MiB

// ImageUploader defines the interface that the service must implement.
type ImageUploader interface {
	UploadImage(ctx context.Context, user *models.UserDB, fileName, contentType string, size int64, body io.Reader) (*models.UserImageDB, error)
}

// NewUploadImageHandler returns an HTTP handler for uploading the caller's profile image.
// The file is read from the multipart form field "file"; uploading over an
// existing image replaces it.
// @Summary Upload or replace the authenticated user's profile image
// @Description Stores the image in the object store and records its metadata. An existing image is replaced.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BasicAuth
// @Param file formData file true "Image file (JPEG or PNG)"
// @Success 201 {object} handlers.ImageResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "Empty file / unsupported type / duplicate / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user/self/pic [post]
func NewUploadImageHandler(users UserGetter, svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := resolveUser(r.Context(), users, w)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid multipart request",
			})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Missing file field",
			})
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")

		image, err := svc.UploadImage(r.Context(), user, header.Filename, contentType, header.Size, file)
		if err != nil {
			switch err {
			case services.ErrEmptyFile, services.ErrInvalidFileType, services.ErrDuplicateImage:
				w.WriteHeader(http.StatusBadRequest)
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newImageResponse(image))
	}
}
