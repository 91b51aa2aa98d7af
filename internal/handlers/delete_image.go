package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// ImageDeleter defines the interface that the service must implement.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, userID uuid.UUID) error
}

// NewDeleteImageHandler returns an HTTP handler for deleting the caller's profile image.
// @Summary Delete the authenticated user's profile image
// @Description Removes the image metadata and the stored object.
// @Tags images
// @Security BasicAuth
// @Success 204 "Image deleted"
// @Failure 404 {object} handlers.ErrorResponse "User or image not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user/self/pic [delete]
func NewDeleteImageHandler(users UserGetter, svc ImageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := resolveUser(r.Context(), users, w)
		if !ok {
			return
		}

		if err := svc.DeleteImage(r.Context(), user.UserID); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
