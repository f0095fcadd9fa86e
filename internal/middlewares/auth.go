package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KragoN96/berries-web-app/internal/jwt"
	"github.com/KragoN96/berries-web-app/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var claimsKey = contextKey{}

// AuthMiddleware returns a middleware that validates the bearer token and
// injects the subject claims into the request context
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			ctx = SetClaimsToContext(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// SetClaimsToContext stores the verified claims in the context
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
// Returns nil if the request did not pass the auth middleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
