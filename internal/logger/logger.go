package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = ContextKeyRequestID
	userIDKey    ctxKey = ContextKeyUserID
)

// InitLogger installs the process-wide slog logger writing to stdout.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs the process-wide slog logger writing to w.
func InitLoggerWithWriter(config Config, w io.Writer) {
	slog.SetDefault(New(config, w))
}

// New builds a logger without installing it
func New(config Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       config.LogLevel(),
		AddSource:   config.AddSource,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler.WithAttrs(config.BaseAttributes()))
}

// redactSecrets blanks attributes whose key names a credential
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	for _, secret := range SecretAttrKeys {
		if key == secret {
			return slog.String(a.Key, RedactedValue)
		}
	}
	return a
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID returns a new context whose logs name the acting user.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetRequestID extracts the request ID from the context, or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromContext returns the default logger with the request and user ids of
// ctx attached, when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id := GetRequestID(ctx); id != "" {
		log = log.With(AttrKeyRequestID, id)
	}
	if id, _ := ctx.Value(userIDKey).(string); id != "" {
		log = log.With(AttrKeyUserID, id)
	}
	return log
}
