package repository

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Review defines the interface for review persistence
type Review interface {
	UpsertReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context, limit int) ([]domain.Review, error)
	GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error)
}
