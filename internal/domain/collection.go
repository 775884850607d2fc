package domain

// Rarity is the visual rarity tier of an item, derived from its name
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from most to least common.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// RarityConfig holds the display settings of a rarity tier
type RarityConfig struct {
	Rarity     Rarity `json:"rarity"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Sparkle    bool   `json:"sparkle"`
}

// AchievementTier ranks achievements by difficulty
type AchievementTier string

const (
	TierBronze    AchievementTier = "bronze"
	TierSilver    AchievementTier = "silver"
	TierGold      AchievementTier = "gold"
	TierPlatinum  AchievementTier = "platinum"
	TierDiamond   AchievementTier = "diamond"
	TierLegendary AchievementTier = "legendary"
)

// AchievementCategory names the counter an achievement tracks
type AchievementCategory string

const (
	AchievementItems      AchievementCategory = "items"
	AchievementStreak     AchievementCategory = "streak"
	AchievementCategories AchievementCategory = "category"
)

// Achievement is a static threshold goal over one counter
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Tier        AchievementTier     `json:"tier"`
	Category    AchievementCategory `json:"category"`
	Threshold   int                 `json:"threshold"`
}

// AchievementProgress is a locked achievement with the distance left to unlock it
type AchievementProgress struct {
	Achievement
	Current   int `json:"current"`
	Remaining int `json:"remaining"`
}

// CollectionBadge is a static badge; its unlock rule lives with the engine
type CollectionBadge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Level is one band of the experience table. MaxExp is exclusive.
type Level struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	MinExp int    `json:"min_exp"`
	MaxExp int    `json:"max_exp"`
}

// LevelProgress places a total EXP within its level band
type LevelProgress struct {
	Level
	ExpIntoLevel int  `json:"exp_into_level"`
	ExpToNext    int  `json:"exp_to_next"`
	IsMaxLevel   bool `json:"is_max_level"`
}

// CategoryBreakdown is the item count of one category
type CategoryBreakdown struct {
	CategoryID string `json:"category_id"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	Count      int    `json:"count"`
}

// CollectionStats is the gamification view-model of a user's collection.
// It is derived from the item list on every request and never persisted.
type CollectionStats struct {
	TotalExp             int                   `json:"total_exp"`
	Level                LevelProgress         `json:"level"`
	ItemCount            int                   `json:"item_count"`
	CategoryCount        int                   `json:"category_count"`
	Streak               int                   `json:"streak"`
	UnlockedAchievements []Achievement         `json:"unlocked_achievements"`
	NextAchievements     []AchievementProgress `json:"next_achievements"`
	UnlockedBadges       []CollectionBadge     `json:"unlocked_badges"`
	RarityBreakdown      map[Rarity]int        `json:"rarity_breakdown"`
	CategoryBreakdown    []CategoryBreakdown   `json:"category_breakdown"`
}

// UnlockSnapshot is the last unlock state a user has been notified about
type UnlockSnapshot struct {
	BadgeIDs       []string `json:"badge_ids"`
	AchievementIDs []string `json:"achievement_ids"`
	Level          int      `json:"level"`
}

// UnlockDiff lists what became unlocked since the previous snapshot
type UnlockDiff struct {
	NewAchievements []Achievement     `json:"new_achievements"`
	NewBadges       []CollectionBadge `json:"new_badges"`
	LeveledUp       bool              `json:"leveled_up"`
	PreviousLevel   int               `json:"previous_level"`
	NewLevel        int               `json:"new_level"`
}

// IsEmpty reports whether nothing new was unlocked
func (d UnlockDiff) IsEmpty() bool {
	return len(d.NewAchievements) == 0 && len(d.NewBadges) == 0 && !d.LeveledUp
}
