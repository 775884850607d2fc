package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// CategoryRepository implements repository.Category
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categorySelect = `
	SELECT c.category_id, c.user_id::text, c.name, c.icon, c.color, c.sort_order, c.is_default,
	       COALESCE(cc.item_count, 0)
	FROM categories c
	LEFT JOIN category_counts cc ON cc.category_id = c.category_id AND cc.user_id = $1
	WHERE (c.user_id IS NULL OR c.user_id = $1)`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Icon,
		&c.Color,
		&c.SortOrder,
		&c.IsDefault,
		&c.ItemCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns the defaults and the user's custom categories by sort order
func (r *CategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := categorySelect + `
		ORDER BY c.sort_order, c.created_at, c.category_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCategories, err)
	}
	return categories, nil
}

// GetCategory returns a default category or one of the user's own
func (r *CategoryRepository) GetCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := categorySelect + ` AND c.category_id = $2
		ORDER BY c.is_default DESC
		LIMIT 1
	`
	c, err := scanCategory(r.db.QueryRow(ctx, query, userID, categoryID))
	if err != nil {
		return nil, notFoundOr(err, domain.ErrCategoryNotFound, ErrMsgFailedToGetCategory)
	}
	return c, nil
}

// CreateCategory inserts a custom category
func (r *CategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (category_id, user_id, name, icon, color, sort_order, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
	`
	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Icon,
		category.Color,
		category.SortOrder,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCategory, err)
	}
	return nil
}

// UpdateCategory writes the display fields of a custom category
func (r *CategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if category.UserID == nil {
		return domain.ErrDefaultCategory
	}
	query := `
		UPDATE categories
		SET name = $3, icon = $4, color = $5
		WHERE category_id = $1 AND user_id = $2 AND NOT is_default
	`
	tag, err := r.db.Exec(ctx, query,
		category.ID,
		*category.UserID,
		category.Name,
		category.Icon,
		category.Color,
	)
	if err != nil {
		return notFoundOr(err, domain.ErrCategoryNotFound, ErrMsgFailedToUpdateCategory)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a custom category. Its items and their count move to
// "other" in the same transaction.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM categories WHERE category_id = $1 AND user_id = $2 AND NOT is_default`,
			categoryID, userID,
		)
		if err != nil {
			return notFoundOr(err, domain.ErrCategoryNotFound, ErrMsgFailedToDeleteCategory)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrCategoryNotFound
		}

		moved, err := tx.Exec(ctx,
			`UPDATE items SET category_id = $3, updated_at = NOW() WHERE user_id = $1 AND category_id = $2`,
			userID, categoryID, domain.CategoryOther,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReassignItems, err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM category_counts WHERE user_id = $1 AND category_id = $2`,
			userID, categoryID,
		); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToAdjustCount, err)
		}
		if moved.RowsAffected() == 0 {
			return nil
		}
		return adjustCategoryCount(ctx, tx, userID, domain.CategoryOther, int(moved.RowsAffected()))
	})
}

// SyncDefaultCategories upserts the shared categories. Rows whose display
// fields already match are left untouched.
func (r *CategoryRepository) SyncDefaultCategories(ctx context.Context, defaults []domain.Category) (domain.CategorySyncResult, error) {
	var result domain.CategorySyncResult
	query := `
		INSERT INTO categories (category_id, user_id, name, icon, color, sort_order, is_default)
		VALUES ($1, NULL, $2, $3, $4, $5, TRUE)
		ON CONFLICT (category_id) WHERE user_id IS NULL DO UPDATE
		SET name = EXCLUDED.name, icon = EXCLUDED.icon, color = EXCLUDED.color, sort_order = EXCLUDED.sort_order
		WHERE (categories.name, categories.icon, categories.color, categories.sort_order)
		      IS DISTINCT FROM (EXCLUDED.name, EXCLUDED.icon, EXCLUDED.color, EXCLUDED.sort_order)
		RETURNING (xmax = 0)
	`
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range defaults {
			var inserted bool
			err := tx.QueryRow(ctx, query, c.ID, c.Name, c.Icon, c.Color, c.SortOrder).Scan(&inserted)
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				result.Unchanged++
			case err != nil:
				return fmt.Errorf("%s: %s: %w", ErrMsgFailedToSyncDefaults, c.ID, err)
			case inserted:
				result.Inserted++
			default:
				result.Updated++
			}
		}
		return nil
	})
	return result, err
}
