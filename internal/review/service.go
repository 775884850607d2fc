package review

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// Service defines the interface for app reviews
type Service interface {
	// SubmitReview stores the user's review; a second submission replaces the first
	SubmitReview(ctx context.Context, userID string, rating int, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context, limit int) ([]domain.Review, error)
	GetSummary(ctx context.Context) (domain.ReviewSummary, error)
}

type service struct {
	repo      repository.Review
	publisher event.Bus
	now       func() time.Time
}

// NewService creates a review service
func NewService(repo repository.Review, publisher event.Bus) Service {
	return &service{repo: repo, publisher: publisher, now: time.Now}
}

func (s *service) SubmitReview(ctx context.Context, userID string, rating int, comment string) (*domain.Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidRating, rating)
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", domain.ErrInvalidInput, MaxCommentLength)
	}

	now := s.now().UTC()
	review := &domain.Review{
		ID:        uuid.NewString(),
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// On conflict the repository keeps the original id and created_at and
	// writes them back into review.
	if err := s.repo.UpsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpsertReview, err)
	}

	logger.FromContext(ctx).Info(LogMsgReviewSubmitted, "user_id", userID, "rating", rating)
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewReviewSubmittedEvent(userID, rating)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "error", err)
		}
	}
	return review, nil
}

// ListReviews returns the newest reviews first
func (s *service) ListReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	reviews, err := s.repo.ListReviews(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListReviews, err)
	}
	return reviews, nil
}

// GetSummary returns the review count and the average rating rounded to two decimals
func (s *service) GetSummary(ctx context.Context) (domain.ReviewSummary, error) {
	summary, err := s.repo.GetReviewSummary(ctx)
	if err != nil {
		return domain.ReviewSummary{}, fmt.Errorf("%s: %w", ErrContextSummary, err)
	}
	summary.AverageRating = math.Round(summary.AverageRating*100) / 100
	return summary, nil
}
