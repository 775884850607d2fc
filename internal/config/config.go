package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // streak day boundaries must resolve in minimal containers

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string

	// EnvSchemaVersion is the layout version of the .env file in use
	EnvSchemaVersion string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string   // API key shared with the frontend server
	AdminUserIDs   []string // users allowed on /admin routes
	TrustedProxies []string // peers whose X-Forwarded-For is believed

	// Timezone decides where calendar days start for streaks
	Timezone string
	Location *time.Location

	CORSAllowedOrigins []string
	MaxImageBytes      int

	StatsCacheSize    int
	StatsCacheTTL     time.Duration
	UserCacheSize     int
	UserCacheTTL      time.Duration
	NameIconCacheSize int

	EventMaxRetries  int
	EventRetryDelay  time.Duration
	DeadLetterPath   string
	ShutdownTimeout  time.Duration
	ReadinessTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		EnvSchemaVersion: getEnv("ENV_SCHEMA_VERSION", ""),

		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", DefaultDBHost),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:         getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:         getEnv("API_KEY", ""),
		AdminUserIDs:   getEnvAsList("ADMIN_USER_IDS"),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		Timezone:           getEnv("TIMEZONE", DefaultTimezone),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		MaxImageBytes:      getEnvAsInt("MAX_IMAGE_BYTES", DefaultMaxImageBytes),

		StatsCacheSize:    getEnvAsInt("STATS_CACHE_SIZE", DefaultStatsCacheSize),
		StatsCacheTTL:     getEnvAsDuration("STATS_CACHE_TTL", DefaultStatsCacheTTL),
		UserCacheSize:     getEnvAsInt("USER_CACHE_SIZE", DefaultUserCacheSize),
		UserCacheTTL:      getEnvAsDuration("USER_CACHE_TTL", DefaultUserCacheTTL),
		NameIconCacheSize: getEnvAsInt("NAME_ICON_CACHE_SIZE", DefaultNameIconCacheSize),

		EventMaxRetries:  getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:  getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:   getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		ReadinessTimeout: getEnvAsDuration("READINESS_TIMEOUT", DefaultReadinessTimeout),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProd
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration variable, falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection URL. Credentials are
// escaped, so passwords may contain any character.
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = DefaultDBSSLMode
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}
