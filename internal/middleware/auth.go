package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/crypto"
	"github.com/mesto/mesto-go/internal/httpx"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth returns middleware that validates a Bearer token from the
// Authorization header. Every failure path goes through the response
// dispatcher as an Unauthorized taxonomy error; the handler chain is never
// reached without a verified identity in the context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				httpx.Error(w, r, apperr.Unauthorized("authorization required"))
				return
			}

			userID, err := crypto.VerifyToken(token, secret)
			if err != nil {
				httpx.Error(w, r, apperr.Unauthorized("authorization required"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request
// context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
