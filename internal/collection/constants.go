package collection

import "time"

// ============================================================================
// Experience Weights
// ============================================================================

// ExpPerItem is the EXP granted for every registered item.
const ExpPerItem = 10

// ExpPerCategory is the EXP granted for every distinct category in use.
const ExpPerCategory = 30

// ExpPerStreakDay is the EXP granted for every day of the current streak.
const ExpPerStreakDay = 5

// StreakBonusWeek is the one-off EXP bonus once the streak reaches StreakWeekDays.
const StreakBonusWeek = 50

// StreakBonusMonth is the one-off EXP bonus once the streak reaches StreakMonthDays.
const StreakBonusMonth = 100

// StreakWeekDays is the streak length that earns StreakBonusWeek.
const StreakWeekDays = 7

// StreakMonthDays is the streak length that earns StreakBonusMonth.
const StreakMonthDays = 30

// ============================================================================
// Achievement Preview
// ============================================================================

// NextAchievementsLimit caps the locked achievements previewed to the user.
const NextAchievementsLimit = 2

// ============================================================================
// Rarity Roll
// ============================================================================

// RarityRollRange is the modulus the name hash is reduced to before the
// thresholds below are applied. Checks run from rarest to most common.
const RarityRollRange = 1000

// RarityLegendaryThreshold: rolls below 5 (0.5%) are LEGENDARY.
const RarityLegendaryThreshold = 5

// RarityEpicThreshold: rolls below 30 (2.5%) are EPIC.
const RarityEpicThreshold = 30

// RarityRareThreshold: rolls below 100 (7%) are RARE.
const RarityRareThreshold = 100

// RarityUncommonThreshold: rolls below 300 (20%) are UNCOMMON. Everything else is COMMON.
const RarityUncommonThreshold = 300

// RarityDateLayout is the day bucket mixed into the rarity hash.
const RarityDateLayout = "2006-01-02"

// ============================================================================
// Streak
// ============================================================================

// StreakWindowDays bounds how far back the streak scan looks.
const StreakWindowDays = 365

// ============================================================================
// Badges
// ============================================================================

// Badge thresholds
const (
	BadgeDeclutterThreshold   = 10
	BadgeTaggerThreshold      = 5
	BadgeStorytellerThreshold = 5
)

// ============================================================================
// Service
// ============================================================================

// StatsCacheSize is the number of users whose stats are memoized.
const StatsCacheSize = 1000

// StatsCacheTTL bounds how long memoized stats live even without invalidation.
const StatsCacheTTL = 10 * time.Minute

// UnlockLockStripes is the number of mutexes CheckUnlocks serializes users over.
const UnlockLockStripes = 64

// StatsGenerationStripes is the number of invalidation counters the stats memo
// spreads users over.
const StatsGenerationStripes = 256

// Log messages
const (
	LogMsgStatsComputed      = "Collection stats computed"
	LogMsgStatsCacheHit      = "Collection stats served from cache"
	LogMsgStatsStale         = "Collection stats invalidated while computing, not memoized"
	LogMsgUnlocksDetected    = "New unlocks detected"
	LogMsgSnapshotBaseline   = "Unlock snapshot baseline recorded"
	LogMsgEventPublishFailed = "Failed to publish unlock event"
)

// Error context messages
const (
	ErrContextListItems      = "failed to list items"
	ErrContextListCategories = "failed to list categories"
	ErrContextGetSnapshot    = "failed to get unlock snapshot"
	ErrContextSaveSnapshot   = "failed to save unlock snapshot"
)
