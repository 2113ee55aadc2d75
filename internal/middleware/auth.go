// Package middleware provides the token-checking middleware for protected
// routes and the typed context value carrying the authenticated user id.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/auth"
)

type contextKey struct{}

var identityKey = contextKey{}

// WithIdentity returns a context carrying the authenticated user id.
func WithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// IdentityFromContext extracts the authenticated user id set by
// AuthMiddleware. ok is false if the request never passed the middleware.
func IdentityFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(identityKey).(string)
	return userID, ok
}

// AuthMiddleware validates the Bearer token on every request of a
// protected subrouter. A missing token yields 401; a token that fails
// signature or expiry checks yields 403. On success the user id from the
// token is attached to the request context.
func AuthMiddleware(secret []byte, log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			userID, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				log.Debugf("Token rejected: %v", err)
				writeJSONError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := WithIdentity(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
