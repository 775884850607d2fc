package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// ReviewRepository implements repository.Review
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// UpsertReview stores the user's review. A second submission overwrites the
// rating and comment but keeps the original id and created_at, which are
// written back into review.
func (r *ReviewRepository) UpsertReview(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (review_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET rating = EXCLUDED.rating,
		    comment = EXCLUDED.comment,
		    updated_at = EXCLUDED.updated_at
		RETURNING review_id::text, created_at
	`
	err := r.db.QueryRow(ctx, query,
		review.ID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return notFoundOr(err, domain.ErrUserNotFound, ErrMsgFailedToUpsertReview)
	}
	return nil
}

// ListReviews returns the most recent reviews first
func (r *ReviewRepository) ListReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	query := `
		SELECT review_id::text, user_id::text, rating, comment, created_at, updated_at
		FROM reviews
		ORDER BY updated_at DESC, review_id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListReviews, err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListReviews, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListReviews, err)
	}
	return reviews, nil
}

// GetReviewSummary returns the review count and the unrounded average rating
func (r *ReviewRepository) GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error) {
	return reviewSummary(ctx, r.db)
}

func reviewSummary(ctx context.Context, db *pgxpool.Pool) (domain.ReviewSummary, error) {
	var summary domain.ReviewSummary
	err := db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM reviews`,
	).Scan(&summary.Count, &summary.AverageRating)
	if err != nil {
		return domain.ReviewSummary{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetReviewSummary, err)
	}
	return summary, nil
}
