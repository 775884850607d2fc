package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// Service defines the interface for admin analytics and leaderboards
type Service interface {
	GetAnalytics(ctx context.Context, days int) (*domain.Analytics, error)
	// GetLeaderboard ranks users by items registered in the last days days;
	// days <= 0 ranks over all time.
	GetLeaderboard(ctx context.Context, days, limit int) ([]domain.LeaderboardEntry, error)
	PurgeCache()
}

// service implements the Service interface
type service struct {
	repo  repository.Stats
	loc   *time.Location
	now   func() time.Time
	cache *expirable.LRU[string, domain.Analytics]
}

// NewService creates a new stats service
func NewService(repo repository.Stats, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:  repo,
		loc:   loc,
		now:   time.Now,
		cache: expirable.NewLRU[string, domain.Analytics](AnalyticsCacheSize, nil, AnalyticsCacheTTL),
	}
}

// GetAnalytics loads the projections and reduces them into the dashboard summary
func (s *service) GetAnalytics(ctx context.Context, days int) (*domain.Analytics, error) {
	log := logger.FromContext(ctx)
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	days = min(days, MaxAnalyticsDays)

	key := strconv.Itoa(days)
	if cached, ok := s.cache.Get(key); ok {
		log.Debug(LogMsgAnalyticsCacheHit, "days", days)
		return &cached, nil
	}

	items, err := s.repo.ListAnalyticsItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListItems, err)
	}
	users, err := s.repo.ListAnalyticsUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListUsers, err)
	}
	categories, err := s.repo.ListCategoryNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCategories, err)
	}
	reviews, err := s.repo.GetReviewSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReviewSummary, err)
	}

	analytics := BuildAnalytics(AnalyticsInput{
		Items:      items,
		Users:      users,
		Categories: categories,
		Reviews:    reviews,
	}, days, s.now(), s.loc)
	s.cache.Add(key, analytics)

	log.Info(LogMsgAnalyticsComputed, "days", days, "users", analytics.TotalUsers, "items", analytics.TotalItems)
	return &analytics, nil
}

// GetLeaderboard returns ranked entries, rank starting at 1
func (s *service) GetLeaderboard(ctx context.Context, days, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)

	var since time.Time
	if days > 0 {
		local := s.now().In(s.loc)
		since = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -(days - 1))
	}

	entries, err := s.repo.GetLeaderboard(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLeaderboard, err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// PurgeCache drops every cached analytics window
func (s *service) PurgeCache() {
	s.cache.Purge()
}
