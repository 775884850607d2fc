package event

import "time"

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// Retry configuration constants
const (
	// RetryInitialDelaySeconds is the initial retry delay in seconds (2s)
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	// Log messages for event publishing
	LogMsgEventPublishFailed    = "Event publish failed, retrying in background"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
)

// Error messages
const (
	ErrMsgMissingPayload   = "event has no payload"
	ErrMsgDecodePayload    = "failed to decode event payload"
	ErrMsgOpenDeadLetter   = "failed to open dead-letter file"
	ErrMsgEncodeDeadLetter = "failed to encode dead-letter entry"

	ErrMsgHandlersFailedFormat = "%d handler(s) failed for %s: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
