package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
)

// Tokener defines the token operations the middleware needs
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Authenticator checks basic credentials against the credential store
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

// IdentityMiddleware resolves the caller's email from a Bearer JWT or from
// Basic credentials and stores it in the request context. Requests without a
// valid identity are rejected with 401.
func IdentityMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				claims, err := tokener.GetClaims(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("authorization failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(SetEmailToContext(ctx, claims.Email)))
				return
			}

			if email, password, ok := r.BasicAuth(); ok {
				if err := auth.Authenticate(ctx, email, password); err != nil {
					logger.Log.Errorw("authorization failed", "email", email, "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(SetEmailToContext(ctx, email)))
				return
			}

			logger.Log.Errorw("authorization failed", "err", "no credentials supplied")
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
}
