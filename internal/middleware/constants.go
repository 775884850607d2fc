package middleware

// HTTP header names
const (
	// HeaderUserID carries the caller's user id, set by the frontend after
	// the OAuth or guest session is established
	HeaderUserID = "X-User-ID"
)

// Default Values
const (
	// EmptyUserID represents an empty or missing user ID
	EmptyUserID = ""
)

// Error messages written to clients
const (
	ErrMsgInvalidUserID = "X-User-ID must be a UUID"
	ErrMsgMissingUserID = "X-User-ID header is required"
	ErrMsgAdminOnly     = "Admin access required"
)

// Log Messages
const (
	LogMsgInvalidUserID = "Rejected request with malformed user id"
	LogMsgMissingUserID = "Rejected request without user id"
	LogMsgAdminDenied   = "Rejected non-admin request to admin route"
	LogMsgEncodeFailed  = "Failed to encode middleware error response"
)
