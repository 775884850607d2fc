package postgres

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// StatsRepository implements repository.Stats
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// ListAnalyticsItems projects every item for the analytics reducer
func (r *StatsRepository) ListAnalyticsItems(ctx context.Context) ([]domain.AnalyticsItemRow, error) {
	query := `
		SELECT i.user_id::text, i.name, i.category_id, i.is_collected,
		       (img.item_id IS NOT NULL), (i.generated_icon IS NOT NULL), i.created_at
		FROM items i
		LEFT JOIN item_images img ON img.item_id = i.item_id
		ORDER BY i.created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsItems, err)
	}
	defer rows.Close()

	var result []domain.AnalyticsItemRow
	for rows.Next() {
		var row domain.AnalyticsItemRow
		if err := rows.Scan(
			&row.UserID,
			&row.Name,
			&row.Category,
			&row.IsCollected,
			&row.HasImage,
			&row.HasIcon,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsItems, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsItems, err)
	}
	return result, nil
}

// ListAnalyticsUsers projects every user with its link count
func (r *StatsRepository) ListAnalyticsUsers(ctx context.Context) ([]domain.AnalyticsUserRow, error) {
	query := `
		SELECT u.user_id::text, u.is_guest, COUNT(l.provider), u.created_at
		FROM users u
		LEFT JOIN account_links l ON l.user_id = u.user_id
		GROUP BY u.user_id
		ORDER BY u.created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsUsers, err)
	}
	defer rows.Close()

	var result []domain.AnalyticsUserRow
	for rows.Next() {
		var row domain.AnalyticsUserRow
		if err := rows.Scan(&row.UserID, &row.IsGuest, &row.LinkCount, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsUsers, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAnalyticsUsers, err)
	}
	return result, nil
}

// ListCategoryNames returns the defaults in display order followed by the
// distinct custom category ids across all users.
func (r *StatsRepository) ListCategoryNames(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT DISTINCT ON (category_id) category_id, name, icon, sort_order, is_default
		FROM categories
		ORDER BY category_id, is_default DESC, created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCategoryNames, err)
	}
	defer rows.Close()

	var defaults, custom []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.IsDefault); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCategoryNames, err)
		}
		if c.IsDefault {
			defaults = append(defaults, c)
		} else {
			custom = append(custom, c)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCategoryNames, err)
	}

	slices.SortStableFunc(defaults, func(a, b domain.Category) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	return append(defaults, custom...), nil
}

// GetReviewSummary returns the review count and the unrounded average rating
func (r *StatsRepository) GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error) {
	return reviewSummary(ctx, r.db)
}

// GetLeaderboard ranks users by items created since the given time.
// A zero since counts every item.
func (r *StatsRepository) GetLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT u.user_id::text, u.display_name, COUNT(i.item_id) AS item_count
		FROM users u
		JOIN items i ON i.user_id = u.user_id
		WHERE i.created_at >= $1
		GROUP BY u.user_id, u.display_name, u.created_at
		ORDER BY item_count DESC, u.created_at, u.user_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.ItemCount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	return entries, nil
}
