package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
)

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)

// SecretAttrKeys are attribute keys whose values never reach the log
var SecretAttrKeys = []string{"api_key", "password", "db_password", "authorization"}

// RedactedValue replaces secret attribute values
const RedactedValue = "[REDACTED]"
