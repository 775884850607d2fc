package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	const key = "MONO_TEST_STRING"

	t.Run("unset uses default", func(t *testing.T) {
		t.Setenv(key, "")
		unsetEnv(t, key)
		assert.Equal(t, "fallback", getEnv(key, "fallback"))
	})

	t.Run("set but empty is kept", func(t *testing.T) {
		t.Setenv(key, "")
		assert.Equal(t, "", getEnv(key, "fallback"), "an explicit empty value overrides the default")
	})
}

func TestGetEnvAsInt(t *testing.T) {
	const key = "MONO_TEST_INT"

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 42},
		{"positive", "100", 100},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"float", "42.5", 42},
		{"garbage", "lots", 42},
		{"padded", " 7 ", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.raw)
			assert.Equal(t, tt.want, getEnvAsInt(key, 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const key = "MONO_TEST_DURATION"
	def := 5 * time.Minute

	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"empty", "", def},
		{"minutes", "10m", 10 * time.Minute},
		{"compound", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"bare number has no unit", "100", def},
		{"garbage", "soon", def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.raw)
			assert.Equal(t, tt.want, getEnvAsDuration(key, def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	const key = "MONO_TEST_LIST"

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"trims and drops blanks", " a , ,b,", []string{"a", "b"}},
		{"only separators", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.raw)
			assert.Equal(t, tt.want, getEnvAsList(key))
		})
	}
}
