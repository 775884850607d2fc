package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/google/uuid"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// Placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

const (
	minPort = 1
	maxPort = 65535
)

// Validate checks a loaded configuration. Settings the service cannot run
// with are joined into the returned error. Settings that work but are
// probably a mistake come back as warnings.
func (c *Config) Validate() ([]string, error) {
	var errs []error

	switch c.EnvSchemaVersion {
	case ExpectedEnvSchemaVersion:
	case "":
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION is not set - add it to your .env file (expected: %s)", ExpectedEnvSchemaVersion))
	default:
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}

	if c.Port < minPort || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("PORT %d is outside %d-%d", c.Port, minPort, maxPort))
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"DB_USER", c.DBUser},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_NAME", c.DBName},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	if c.MaxImageBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_IMAGE_BYTES must be positive, got %d", c.MaxImageBytes))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries))
	}
	for _, p := range c.TrustedProxies {
		if _, err := netip.ParseAddr(p); err != nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP address", p))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c.warnings(), nil
}

func (c *Config) warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.IsProduction() && len(c.AdminUserIDs) == 0 {
		warnings = append(warnings, "ADMIN_USER_IDS is empty - admin analytics will be unreachable")
	}
	for _, id := range c.AdminUserIDs {
		if _, err := uuid.Parse(id); err != nil {
			warnings = append(warnings, fmt.Sprintf("ADMIN_USER_IDS entry %q is not a user id and will never match", id))
		}
	}
	if c.IsProduction() && c.DBSSLMode == DefaultDBSSLMode {
		warnings = append(warnings, "DB_SSLMODE is disable in production")
	}

	return warnings
}
