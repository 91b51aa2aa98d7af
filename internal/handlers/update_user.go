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

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, currentEmail, email string, firstName, lastName, password *string) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for account updates.
// Omitted fields are left unchanged; the email must match the
// authenticated identity.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	// default: John
	FirstName *string `json:"firstName,omitempty"`

	// Last name
	// default: Doe
	LastName *string `json:"lastName,omitempty"`

	// Email, must equal the authenticated email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// New password, at least 8 characters
	Password *string `json:"password,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler for updating the caller's account.
// @Summary Update the authenticated user's account
// @Description Updates name and/or password. The email is immutable and must match the authenticated identity.
// @Tags users
// @Accept json
// @Security BasicAuth
// @Success 204 "Account updated"
// @Failure 400 {object} handlers.ErrorResponse "Email change attempted / password too short / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user/self [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		currentEmail := middlewares.GetEmailFromContext(r.Context())

		_, err := svc.UpdateUser(r.Context(), currentEmail, req.Email, req.FirstName, req.LastName, req.Password)
		if err != nil {
			switch err {
			case services.ErrEmailImmutable, services.ErrPasswordTooShort:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: err.Error(),
				})
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

		w.WriteHeader(http.StatusNoContent)
	}
}
