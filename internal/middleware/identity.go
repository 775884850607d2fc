package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/MonoCollector_Go/internal/logger"
)

type contextKey string

// UserIDKey holds the caller's canonical user id in a request context
const UserIDKey contextKey = "user_id"

// WithUserID stores userID in ctx, for handlers and for request logs
func WithUserID(ctx context.Context, userID string) context.Context {
	return logger.WithUserID(context.WithValue(ctx, UserIDKey, userID), userID)
}

// GetUserID returns the caller id, or EmptyUserID for anonymous requests
func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(UserIDKey).(string); ok {
		return uid
	}
	return EmptyUserID
}

// UserIdentity reads X-User-ID into the request context. The header is
// optional here; a present but malformed value is rejected with 400.
func UserIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgInvalidUserID, "path", r.URL.Path)
			writeError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id.String())))
	})
}

// RequireUser rejects requests that carry no user id
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r.Context()) == EmptyUserID {
			logger.FromContext(r.Context()).Warn(LogMsgMissingUserID, "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, ErrMsgMissingUserID)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin only lets through users listed in adminIDs
func RequireAdmin(adminIDs []string) func(http.Handler) http.Handler {
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		if parsed, err := uuid.Parse(strings.TrimSpace(id)); err == nil {
			admins[parsed.String()] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == EmptyUserID {
				writeError(w, http.StatusUnauthorized, ErrMsgMissingUserID)
				return
			}
			if !admins[userID] {
				logger.FromContext(r.Context()).Warn(LogMsgAdminDenied, "user_id", userID, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, ErrMsgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Default().Error(LogMsgEncodeFailed, "error", err)
	}
}
