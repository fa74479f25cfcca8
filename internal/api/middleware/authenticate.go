package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/blaisecz/sleep-journal/internal/auth"
	"github.com/blaisecz/sleep-journal/pkg/problem"
	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the token's user ID in the request context.
func Authenticate(tokens auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="sleep-journal"`)
				problem.Unauthorized("Missing bearer token").Write(w)
				return
			}

			userID, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="sleep-journal", error="invalid_token"`)
				problem.Unauthorized("Invalid or expired session").Write(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}
