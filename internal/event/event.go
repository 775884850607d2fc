package event

import (
	"time"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Type names what happened, "<entity>.<verb>"
type Type string

// Metadata carries optional context alongside the payload
type Metadata interface{}

// Event is what flows through a Bus. Payload is one of the *PayloadV1
// structs when published in-process and a decoded JSON map when replayed.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue returns metadata[key] when metadata is a map, else nil
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Item lifecycle event types
const (
	ItemCreated       Type = "item.created"
	ItemUpdated       Type = "item.updated"
	ItemDeleted       Type = "item.deleted"
	ItemCollected     Type = "item.collected"
	ItemImageUploaded Type = "item.image_uploaded"
	ItemIconGenerated Type = "item.icon_generated"
)

// Category event types
const (
	CategoryCreated Type = "category.created"
	CategoryUpdated Type = "category.updated"
	CategoryDeleted Type = "category.deleted"
)

// Gamification event types
const (
	AchievementUnlocked Type = "achievement.unlocked"
	BadgeUnlocked       Type = "badge.unlocked"
	LevelUp             Type = "level.up"
)

// Account event types
const (
	UserCreated     Type = "user.created"
	AccountLinked   Type = "account.linked"
	AccountUnlinked Type = "account.unlinked"
	ReviewSubmitted Type = "review.submitted"
)

// ItemPayloadV1 is the typed payload for item lifecycle events
type ItemPayloadV1 struct {
	UserID    string `json:"user_id"`
	ItemID    string `json:"item_id"`
	Category  string `json:"category"`
	Source    string `json:"source,omitempty"` // icon source for icon events
	Timestamp int64  `json:"timestamp"`
}

// CategoryPayloadV1 is the typed payload for custom category events
type CategoryPayloadV1 struct {
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	Timestamp  int64  `json:"timestamp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlock events
type AchievementUnlockedPayloadV1 struct {
	UserID        string                     `json:"user_id"`
	AchievementID string                     `json:"achievement_id"`
	Tier          domain.AchievementTier     `json:"tier"`
	Category      domain.AchievementCategory `json:"category"`
	Timestamp     int64                      `json:"timestamp"`
}

// BadgeUnlockedPayloadV1 is the typed payload for badge unlock events
type BadgeUnlockedPayloadV1 struct {
	UserID    string `json:"user_id"`
	BadgeID   string `json:"badge_id"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID    string `json:"user_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// AccountPayloadV1 is the typed payload for user and account link events
type AccountPayloadV1 struct {
	UserID    string `json:"user_id"`
	Provider  string `json:"provider,omitempty"`
	IsGuest   bool   `json:"is_guest"`
	Timestamp int64  `json:"timestamp"`
}

// ReviewPayloadV1 is the typed payload for review events
type ReviewPayloadV1 struct {
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewItemEvent creates an item lifecycle event
func NewItemEvent(eventType Type, item *domain.Item) Event {
	return newEvent(eventType, ItemPayloadV1{
		UserID:    item.UserID,
		ItemID:    item.ID,
		Category:  item.Category,
		Source:    string(item.IconSource),
		Timestamp: time.Now().Unix(),
	})
}

// NewCategoryEvent creates a custom category event
func NewCategoryEvent(eventType Type, userID, categoryID string) Event {
	return newEvent(eventType, CategoryPayloadV1{UserID: userID, CategoryID: categoryID, Timestamp: time.Now().Unix()})
}

// NewAchievementUnlockedEvent announces an achievement reported by an unlock check
func NewAchievementUnlockedEvent(userID string, a domain.Achievement) Event {
	return newEvent(AchievementUnlocked, AchievementUnlockedPayloadV1{
		UserID:        userID,
		AchievementID: a.ID,
		Tier:          a.Tier,
		Category:      a.Category,
		Timestamp:     time.Now().Unix(),
	})
}

// NewBadgeUnlockedEvent announces a badge reported by an unlock check
func NewBadgeUnlockedEvent(userID string, b domain.CollectionBadge) Event {
	return newEvent(BadgeUnlocked, BadgeUnlockedPayloadV1{UserID: userID, BadgeID: b.ID, Timestamp: time.Now().Unix()})
}

// NewLevelUpEvent announces a level change reported by an unlock check
func NewLevelUpEvent(userID string, oldLevel, newLevel int) Event {
	return newEvent(LevelUp, LevelUpPayloadV1{
		UserID:    userID,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Timestamp: time.Now().Unix(),
	})
}

// NewAccountEvent creates a user or account link event
func NewAccountEvent(eventType Type, userID, provider string, isGuest bool) Event {
	return newEvent(eventType, AccountPayloadV1{
		UserID:    userID,
		Provider:  provider,
		IsGuest:   isGuest,
		Timestamp: time.Now().Unix(),
	})
}

// NewReviewSubmittedEvent creates a review submitted event
func NewReviewSubmittedEvent(userID string, rating int) Event {
	return newEvent(ReviewSubmitted, ReviewPayloadV1{UserID: userID, Rating: rating, Timestamp: time.Now().Unix()})
}
