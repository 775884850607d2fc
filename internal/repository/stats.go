package repository

import (
	"context"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Stats defines the read-only queries behind admin analytics and leaderboards
type Stats interface {
	ListAnalyticsItems(ctx context.Context) ([]domain.AnalyticsItemRow, error)
	ListAnalyticsUsers(ctx context.Context) ([]domain.AnalyticsUserRow, error)
	ListCategoryNames(ctx context.Context) ([]domain.Category, error)
	GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error)
	GetLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error)
}
