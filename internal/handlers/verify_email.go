package handlers

import (
	"context"
	"net/http"
)

// TokenConsumer defines the interface that the service must implement.
type TokenConsumer interface {
	ConsumeToken(ctx context.Context, token string) bool
}

// NewVerifyEmailHandler returns an HTTP handler for email verification.
// The outcome is a plain-text verdict: any failure cause (unknown token,
// already consumed, expired) collapses into the same failure message.
// @Summary Verify an email address
// @Description Consumes a verification token and marks the account as verified.
// @Tags verification
// @Produce plain
// @Param token query string true "Verification token"
// @Success 200 {string} string "Email verified successfully"
// @Failure 400 {string} string "Verification failed"
// @Router /v1/verifyEmail [get]
func NewVerifyEmailHandler(svc TokenConsumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")

		if !svc.ConsumeToken(r.Context(), token) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Verification failed"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Email verified successfully"))
	}
}
