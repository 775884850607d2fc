package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Security metric names
const (
	MetricNameAuthFailures     = "http_auth_failures_total"
	MetricNameRateLimitedTotal = "http_rate_limited_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsCreated         = "items_created_total"
	MetricNameItemsDeleted         = "items_deleted_total"
	MetricNameItemsCollected       = "items_collected_total"
	MetricNameImagesUploaded       = "item_images_uploaded_total"
	MetricNameIconsGenerated       = "item_icons_generated_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameBadgesUnlocked       = "badges_unlocked_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameUsersCreated         = "users_created_total"
	MetricNameAccountsLinked       = "accounts_linked_total"
	MetricNameReviewsSubmitted     = "reviews_submitted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Security metric help text
const (
	HelpTextAuthFailures     = "Total number of requests rejected for a missing or wrong API key"
	HelpTextRateLimitedTotal = "Total number of requests rejected by the per-IP rate limit"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsCreated         = "Total number of items registered"
	HelpTextItemsDeleted         = "Total number of items deleted"
	HelpTextItemsCollected       = "Total number of items marked as collected"
	HelpTextImagesUploaded       = "Total number of item photos uploaded"
	HelpTextIconsGenerated       = "Total number of item icons generated"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextBadgesUnlocked       = "Total number of collection badges unlocked"
	HelpTextLevelUps             = "Total number of level ups"
	HelpTextUsersCreated         = "Total number of users created"
	HelpTextAccountsLinked       = "Total number of provider accounts linked"
	HelpTextReviewsSubmitted     = "Total number of app reviews submitted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelCategory    = "category"
	LabelSource      = "source"
	LabelAchievement = "achievement"
	LabelBadge       = "badge"
	LabelLevel       = "level"
	LabelProvider    = "provider"
	LabelRating      = "rating"
)

// unmatchedRoute labels requests that no route pattern matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
