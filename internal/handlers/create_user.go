package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, firstName, lastName, email, password string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for account creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserResponse represents the public view of a user account
// swagger:model UserResponse
type UserResponse struct {
	// User ID
	ID string `json:"id"`

	// First name
	FirstName string `json:"firstName"`

	// Last name
	LastName string `json:"lastName"`

	// Email
	Email string `json:"email"`

	// Whether the email has been verified
	Verified bool `json:"verified"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.UserID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Verified:  user.Verified,
	}
}

// NewCreateUserHandler returns an HTTP handler for account creation.
// @Summary Create a new user account
// @Description Creates a user account with a unique email, hashes the password and issues an email verification token.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "Account creation request"
// @Success 201 {object} handlers.UserResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / password too short / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /v1/user [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.CreateUser(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			switch err {
			case services.ErrEmailAlreadyRegistered, services.ErrPasswordTooShort:
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
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
