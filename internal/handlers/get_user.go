package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler for reading the caller's account.
// @Summary Get the authenticated user's account
// @Description Returns the account identified by the authenticated email.
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} handlers.UserResponse "Account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user/self [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := middlewares.GetEmailFromContext(r.Context())

		user, err := svc.GetUserByEmail(r.Context(), email)
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
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
