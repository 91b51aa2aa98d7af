package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
)

// VerifiedChecker reports whether the identity's email has been verified
type VerifiedChecker interface {
	IsUserVerified(ctx context.Context, email string) bool
}

// VerificationMiddleware is the access gate in front of protected routes:
// an authenticated but unverified account is rejected with 403 and the
// underlying handler is never invoked. Public routes (account creation,
// token submission, login, health check) are wired outside this middleware.
func VerificationMiddleware(checker VerifiedChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email := GetEmailFromContext(ctx)
			if email == "" || !checker.IsUserVerified(ctx, email) {
				logger.Log.Warnw("unverified user blocked", "email", email, "uri", r.RequestURI)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
