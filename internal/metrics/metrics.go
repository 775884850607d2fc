package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Security Metrics
var (
	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
		[]string{LabelCategory},
	)

	ItemsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsDeleted,
			Help: HelpTextItemsDeleted,
		},
	)

	ItemsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCollected,
			Help: HelpTextItemsCollected,
		},
	)

	ImagesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameImagesUploaded,
			Help: HelpTextImagesUploaded,
		},
	)

	IconsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIconsGenerated,
			Help: HelpTextIconsGenerated,
		},
		[]string{LabelSource},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	BadgesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesUnlocked,
			Help: HelpTextBadgesUnlocked,
		},
		[]string{LabelBadge},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelLevel},
	)

	UsersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUsersCreated,
			Help: HelpTextUsersCreated,
		},
		[]string{LabelType},
	)

	AccountsLinked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccountsLinked,
			Help: HelpTextAccountsLinked,
		},
		[]string{LabelProvider},
	)

	ReviewsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReviewsSubmitted,
			Help: HelpTextReviewsSubmitted,
		},
		[]string{LabelRating},
	)
)
