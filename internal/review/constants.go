package review

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// MaxCommentLength caps review comments, in runes
const MaxCommentLength = 1000

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Error context messages
const (
	ErrContextUpsertReview = "failed to save review"
	ErrContextListReviews  = "failed to list reviews"
	ErrContextSummary      = "failed to summarize reviews"
)

// Log messages
const (
	LogMsgReviewSubmitted    = "Review submitted"
	LogMsgEventPublishFailed = "Failed to publish review event"
)
