package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	handleKey    contextKey = "handle"
	requestIDKey contextKey = "request_id"
)

// AuthMiddleware validates the Bearer token and injects the caller's
// identity into the request context. Requests without a valid token are
// rejected before reaching the handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "authorization required"})
			return
		}

		// header = Bearer <token>
		parts := strings.Fields(header)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid auth header"})
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, handleKey, claims.Handle)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated caller's id.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

// HandleFromContext returns the authenticated caller's handle.
func HandleFromContext(ctx context.Context) (string, bool) {
	handle, ok := ctx.Value(handleKey).(string)
	return handle, ok
}

// RequestIDFromContext returns the request id assigned by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// WithUserID is used by tests and internal callers to impersonate a user.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
