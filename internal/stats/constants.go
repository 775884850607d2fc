package stats

import "time"

// ============================================================================
// Analytics Window
// ============================================================================

// DefaultAnalyticsDays is the window used when no window is requested
const DefaultAnalyticsDays = 30

// MaxAnalyticsDays bounds the per-day series
const MaxAnalyticsDays = 365

// TopItemNamesLimit is the number of most registered names reported
const TopItemNamesLimit = 10

// DateLayout formats per-day buckets
const DateLayout = "2006-01-02"

// ============================================================================
// Query Limits
// ============================================================================

// DefaultLeaderboardLimit is the default number of entries to return in
// leaderboard queries when no limit is specified or limit <= 0
const DefaultLeaderboardLimit = 10

// MaxLeaderboardLimit caps leaderboard queries
const MaxLeaderboardLimit = 100

// ============================================================================
// Analytics Cache
// ============================================================================

// AnalyticsCacheSize is the number of distinct windows cached
const AnalyticsCacheSize = 16

// AnalyticsCacheTTL bounds staleness of the admin dashboard
const AnalyticsCacheTTL = time.Minute

// ============================================================================
// Messages
// ============================================================================

// Error context messages
const (
	ErrContextListItems      = "failed to list analytics items"
	ErrContextListUsers      = "failed to list analytics users"
	ErrContextListCategories = "failed to list categories"
	ErrContextReviewSummary  = "failed to summarize reviews"
	ErrContextLeaderboard    = "failed to get leaderboard"
)

// Log messages
const (
	LogMsgAnalyticsComputed = "Analytics computed"
	LogMsgAnalyticsCacheHit = "Analytics served from cache"
	LogMsgAnalyticsPurged   = "Analytics cache purged"
)
