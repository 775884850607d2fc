package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections applies when the configured maximum is not positive
	DefaultMaxConnections = 10

	// ConnectTimeout bounds pool creation and the initial ping
	ConnectTimeout = 10 * time.Second

	// HealthCheckPeriod is how often idle connections are checked
	HealthCheckPeriod = time.Minute
)

// Session parameters set on every connection
const (
	RuntimeParamTimeZone        = "timezone"
	RuntimeParamApplicationName = "application_name"
	SessionTimeZone             = "UTC"
)

// Migration Constants
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "migrations"

	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateReset   = "reset"
	MigrateVersion = "version"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
