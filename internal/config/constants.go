package config

import "time"

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultPort        = "8080"
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "monocollector"
	DefaultVersion     = "dev"
	DefaultTimezone    = "Asia/Tokyo"

	DefaultDBUser = "postgres"
	DefaultDBHost = "localhost"
	DefaultDBPort = "5432"
	DefaultDBName = "monocollector"

	DefaultDBSSLMode = "disable"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// DefaultMaxImageBytes is the upload limit for item photos (5 MiB)
	DefaultMaxImageBytes = 5 << 20

	DefaultStatsCacheSize    = 1024
	DefaultStatsCacheTTL     = 10 * time.Minute
	DefaultUserCacheSize     = 1024
	DefaultUserCacheTTL      = 5 * time.Minute
	DefaultNameIconCacheSize = 512

	DefaultEventMaxRetries  = 3
	DefaultEventRetryDelay  = 2 * time.Second
	DefaultDeadLetterPath   = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultReadinessTimeout = 2 * time.Second
)

// Environment names
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// listSeparator splits comma separated list variables
const listSeparator = ","
