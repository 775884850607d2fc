package bootstrap

// File System Permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Logger Configuration
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount counts the new session's file too
	LogFileRetentionCount = 10
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting MonoCollector"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event System Configuration
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Default Category Sync
const (
	LogMsgSyncingDefaultCategories   = "Syncing default categories..."
	LogMsgDefaultCategoriesSynced    = "Default categories synced"
	LogMsgDefaultCategoriesUnchanged = "Default categories unchanged, sync skipped"
	ErrMsgFailedSyncDefaults         = "failed to sync default categories"
)

// Event Handler Configuration
const (
	LogMsgMetricsCollectorRegistered  = "Metrics collector registered"
	LogMsgCollectionHandlerRegistered = "Collection stats invalidation registered"
	LogMsgStatsHandlerRegistered      = "Analytics cache invalidation registered"
	ErrMsgFailedRegisterMetrics       = "failed to register metrics collector"
)

// Shutdown Messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
