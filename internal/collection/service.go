package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/concurrency"
	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// Tables is the static gamification data the client renders from
type Tables struct {
	Levels        []domain.Level           `json:"levels"`
	Achievements  []domain.Achievement     `json:"achievements"`
	Badges        []domain.CollectionBadge `json:"badges"`
	RarityConfigs []domain.RarityConfig    `json:"rarity_configs"`
}

// Service defines the interface for collection gamification
type Service interface {
	GetStats(ctx context.Context, userID string) (*domain.CollectionStats, error)
	CheckUnlocks(ctx context.Context, userID string) (*domain.UnlockDiff, error)
	Invalidate(userID string)
	GetTables() Tables
}

type service struct {
	items      repository.Item
	categories repository.Category
	snapshots  repository.UnlockSnapshot
	publisher  event.Bus
	loc        *time.Location
	now        func() time.Time
	cache      *statsCache
	unlocks    *concurrency.LockManager
}

// CacheConfig sizes the stats memo
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the stats memo defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: StatsCacheSize, TTL: StatsCacheTTL}
}

// NewService creates a collection service. loc is the time zone calendar days
// (and therefore streaks) are counted in.
func NewService(items repository.Item, categories repository.Category, snapshots repository.UnlockSnapshot, publisher event.Bus, loc *time.Location) Service {
	return NewServiceWithCache(items, categories, snapshots, publisher, loc, DefaultCacheConfig())
}

// NewServiceWithCache creates a collection service with an explicitly sized stats memo
func NewServiceWithCache(items repository.Item, categories repository.Category, snapshots repository.UnlockSnapshot, publisher event.Bus, loc *time.Location, cacheCfg CacheConfig) Service {
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = StatsCacheSize
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		items:      items,
		categories: categories,
		snapshots:  snapshots,
		publisher:  publisher,
		loc:        loc,
		now:        time.Now,
		cache:      newStatsCache(cacheCfg.Size, cacheCfg.TTL),
		unlocks:    concurrency.NewLockManager(UnlockLockStripes),
	}
}

// GetStats returns the user's collection stats, computing them at most once a
// day between item or category changes.
func (s *service) GetStats(ctx context.Context, userID string) (*domain.CollectionStats, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	day := dayKey(now, s.loc)

	if stats, ok := s.cache.Get(userID, day); ok {
		log.Debug(LogMsgStatsCacheHit, "user_id", userID)
		return &stats, nil
	}

	gen := s.cache.Generation(userID)
	items, err := s.items.ListItems(ctx, userID, domain.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListItems, err)
	}
	categories, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCategories, err)
	}

	createdAt := make([]time.Time, len(items))
	for i, item := range items {
		createdAt[i] = item.CreatedAt
	}
	streak := CalculateStreak(createdAt, now, s.loc)

	stats := CalculateCollectionStats(items, categories, streak)
	if !s.cache.Set(userID, day, gen, stats) {
		log.Debug(LogMsgStatsStale, "user_id", userID)
	}

	log.Debug(LogMsgStatsComputed, "user_id", userID, "items", stats.ItemCount, "level", stats.Level.Level.Level, "streak", streak)
	return &stats, nil
}

// CheckUnlocks diffs the current stats against the last notified snapshot,
// persists the new snapshot and publishes one event per unlock.
func (s *service) CheckUnlocks(ctx context.Context, userID string) (*domain.UnlockDiff, error) {
	log := logger.FromContext(ctx)

	// Concurrent checks for one user would both see the old snapshot and
	// announce the same unlock twice.
	unlock := s.unlocks.Lock(userID)
	defer unlock()

	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	prev, err := s.snapshots.GetUnlockSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSnapshot, err)
	}

	next, diff := Reduce(prev, *stats)
	if prev == nil {
		log.Info(LogMsgSnapshotBaseline, "user_id", userID, "level", next.Level)
	}

	if prev == nil || !diff.IsEmpty() {
		if err := s.snapshots.SaveUnlockSnapshot(ctx, userID, next); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextSaveSnapshot, err)
		}
	}

	if !diff.IsEmpty() {
		log.Info(LogMsgUnlocksDetected, "user_id", userID,
			"achievements", len(diff.NewAchievements),
			"badges", len(diff.NewBadges),
			"leveled_up", diff.LeveledUp)
		s.publishUnlocks(ctx, userID, diff)
	}

	return &diff, nil
}

// publishUnlocks never fails the caller; the snapshot is already persisted
func (s *service) publishUnlocks(ctx context.Context, userID string, diff domain.UnlockDiff) {
	if s.publisher == nil {
		return
	}

	events := make([]event.Event, 0, len(diff.NewAchievements)+len(diff.NewBadges)+1)
	for _, a := range diff.NewAchievements {
		events = append(events, event.NewAchievementUnlockedEvent(userID, a))
	}
	for _, b := range diff.NewBadges {
		events = append(events, event.NewBadgeUnlockedEvent(userID, b))
	}
	if diff.LeveledUp {
		events = append(events, event.NewLevelUpEvent(userID, diff.PreviousLevel, diff.NewLevel))
	}

	for _, evt := range events {
		if err := s.publisher.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}

// Invalidate drops the memoized stats of userID
func (s *service) Invalidate(userID string) {
	s.cache.Invalidate(userID)
}

// GetTables returns the static tables, rarities ordered common first
func (s *service) GetTables() Tables {
	configs := make([]domain.RarityConfig, 0, len(RarityConfigs))
	for _, r := range domain.AllRarities() {
		configs = append(configs, GetRarityConfig(r))
	}
	return Tables{
		Levels:        Levels,
		Achievements:  Achievements,
		Badges:        Badges(),
		RarityConfigs: configs,
	}
}
