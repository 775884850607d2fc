package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Guests
// ============================================================================

// GuestCodeAlphabet omits look-alike characters so codes can be read aloud
const GuestCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GuestCodeLength is the number of characters in a guest code
const GuestCodeLength = 10

// GuestNamePrefix starts the display name of guests that did not pick one
const GuestNamePrefix = "ゲスト"

// guestNameCodeChars is how much of the guest code the default name shows
const guestNameCodeChars = 4

// MaxDisplayNameLength caps display names, in runes
const MaxDisplayNameLength = 50

// MaxProviderAccountIDLength caps provider account ids
const MaxProviderAccountIDLength = 255

// ============================================================================
// Messages
// ============================================================================

// Error context messages
const (
	ErrContextCreateUser = "failed to create user"
	ErrContextGetUser    = "failed to get user"
	ErrContextGuestCode  = "failed to generate guest code"
	ErrContextLookupLink = "failed to look up account link"
	ErrContextCreateLink = "failed to link account"
	ErrContextListLinks  = "failed to list account links"
	ErrContextDeleteLink = "failed to unlink account"
)

// Log messages
const (
	LogMsgGuestCreated       = "Guest user created"
	LogMsgAccountLinked      = "Account linked"
	LogMsgAccountUnlinked    = "Account unlinked"
	LogMsgUserCacheHit       = "User served from cache"
	LogMsgEventPublishFailed = "Failed to publish account event"
)
