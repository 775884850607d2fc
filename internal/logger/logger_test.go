package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useBuffer installs a logger writing to a buffer for the duration of the test
func useBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	InitLoggerWithWriter(cfg, &buf)
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestJSONLogging_BaseAttributes(t *testing.T) {
	buf := useBuffer(t, NewConfig("info", "JSON", "monocollector", "1.2.0", "prod", false))

	slog.Info("item created", "category", "books", "count", 3)

	entry := decodeLine(t, buf)
	assert.Equal(t, "monocollector", entry[AttrKeyService])
	assert.Equal(t, "1.2.0", entry[AttrKeyVersion])
	assert.Equal(t, "prod", entry[AttrKeyEnvironment])
	assert.Equal(t, "item created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "books", entry["category"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestBaseAttributes_SkipsEmpty(t *testing.T) {
	attrs := Config{ServiceName: "svc"}.BaseAttributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}

func TestLevelFiltering(t *testing.T) {
	buf := useBuffer(t, Config{Level: "warn", Format: "text"})

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), "level %q", level)
	}
}

func TestFromContext_AttachesIDs(t *testing.T) {
	buf := useBuffer(t, Config{Level: "debug", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-1")
	FromContext(ctx).Info("scoped")

	entry := decodeLine(t, buf)
	assert.Equal(t, "req-1", entry[AttrKeyRequestID])
	assert.Equal(t, "user-1", entry[AttrKeyUserID])
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestFromContext_Bare(t *testing.T) {
	buf := useBuffer(t, Config{Level: "debug", Format: "json"})

	FromContext(context.Background()).Info("bare")

	entry := decodeLine(t, buf)
	assert.NotContains(t, entry, AttrKeyRequestID)
	assert.NotContains(t, entry, AttrKeyUserID)
}

func TestSecretsAreRedacted(t *testing.T) {
	buf := useBuffer(t, Config{Level: "info", Format: "json"})

	slog.Info("connecting", "API_KEY", "hunter2", "password", "pw", "host", "db")

	entry := decodeLine(t, buf)
	assert.Equal(t, RedactedValue, entry["API_KEY"])
	assert.Equal(t, RedactedValue, entry["password"])
	assert.Equal(t, "db", entry["host"])
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GenerateRequestID())
}
