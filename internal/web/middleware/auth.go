package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shindakun/ethicstraining/internal/web/render"
)

type contextKey string

const bearerTokenKey contextKey = "bearer_token"

// RequireBearer rejects requests without an "Authorization: Bearer <token>"
// header. The token value is passed on in the context but never verified.
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			render.Error(w, http.StatusUnauthorized, "Access token required")
			return
		}

		ctx := context.WithValue(r.Context(), bearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts a non-empty bearer token from the Authorization header
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// TokenFromContext returns the token stored by RequireBearer
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok
}
