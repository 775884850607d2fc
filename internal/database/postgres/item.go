package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// ItemRepository implements repository.Item
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `
	i.item_id::text, i.user_id::text, i.name, i.category_id, i.location, i.tags, i.notes,
	i.is_collected, (img.item_id IS NOT NULL), i.generated_icon, i.icon_source,
	i.created_at, i.updated_at`

const itemFrom = `
	FROM items i
	LEFT JOIN item_images img ON img.item_id = i.item_id`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	var source string
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Category,
		&item.Location,
		&item.Tags,
		&item.Notes,
		&item.IsCollected,
		&item.HasImage,
		&item.GeneratedIcon,
		&source,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.IconSource = domain.IconSource(source)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return &item, nil
}

// adjustCategoryCount moves the per-user counter of a category by delta
func adjustCategoryCount(ctx context.Context, tx pgx.Tx, userID, categoryID string, delta int) error {
	query := `
		INSERT INTO category_counts (user_id, category_id, item_count)
		VALUES ($1, $2, GREATEST($3, 0))
		ON CONFLICT (user_id, category_id)
		DO UPDATE SET item_count = GREATEST(category_counts.item_count + $3, 0)
	`
	if _, err := tx.Exec(ctx, query, userID, categoryID, delta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAdjustCount, err)
	}
	return nil
}

// CreateItem inserts the item and bumps its category counter in one transaction
func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO items (item_id, user_id, name, category_id, location, tags, notes,
			                   is_collected, generated_icon, icon_source, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`
		_, err := tx.Exec(ctx, query,
			item.ID,
			item.UserID,
			item.Name,
			item.Category,
			item.Location,
			nonNil(item.Tags),
			item.Notes,
			item.IsCollected,
			item.GeneratedIcon,
			string(item.IconSource),
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
		}
		return adjustCategoryCount(ctx, tx, item.UserID, item.Category, 1)
	})
}

// GetItem retrieves one item of the user
func (r *ItemRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + itemFrom + `
		WHERE i.item_id = $1 AND i.user_id = $2
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID, userID))
	if err != nil {
		return nil, notFoundOr(err, domain.ErrItemNotFound, ErrMsgFailedToGetItem)
	}
	return item, nil
}

// ListItems returns the user's items newest first. A zero limit means no limit.
func (r *ItemRepository) ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + itemColumns + itemFrom + ` WHERE i.user_id = $1`)
	args := []interface{}{userID}

	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, " AND i.category_id = $%d", len(args))
	}
	if filter.IsCollected != nil {
		args = append(args, *filter.IsCollected)
		fmt.Fprintf(&sb, " AND i.is_collected = $%d", len(args))
	}
	sb.WriteString(" ORDER BY i.created_at DESC, i.item_id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		if isMissingRow(err) {
			return []domain.Item{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// UpdateItem writes every mutable field. When the category changed both
// counters move within the same transaction.
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		var previousCategory string
		err := tx.QueryRow(ctx,
			`SELECT category_id FROM items WHERE item_id = $1 AND user_id = $2 FOR UPDATE`,
			item.ID, item.UserID,
		).Scan(&previousCategory)
		if err != nil {
			return notFoundOr(err, domain.ErrItemNotFound, ErrMsgFailedToUpdateItem)
		}

		query := `
			UPDATE items
			SET name = $3, category_id = $4, location = $5, tags = $6, notes = $7,
			    is_collected = $8, generated_icon = $9, icon_source = $10, updated_at = $11
			WHERE item_id = $1 AND user_id = $2
		`
		_, err = tx.Exec(ctx, query,
			item.ID,
			item.UserID,
			item.Name,
			item.Category,
			item.Location,
			nonNil(item.Tags),
			item.Notes,
			item.IsCollected,
			item.GeneratedIcon,
			string(item.IconSource),
			item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
		}

		if previousCategory == item.Category {
			return nil
		}
		if err := adjustCategoryCount(ctx, tx, item.UserID, previousCategory, -1); err != nil {
			return err
		}
		return adjustCategoryCount(ctx, tx, item.UserID, item.Category, 1)
	})
}

// DeleteItem removes the item, its image and its share of the category counter
func (r *ItemRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		var categoryID string
		err := tx.QueryRow(ctx,
			`DELETE FROM items WHERE item_id = $1 AND user_id = $2 RETURNING category_id`,
			itemID, userID,
		).Scan(&categoryID)
		if err != nil {
			return notFoundOr(err, domain.ErrItemNotFound, ErrMsgFailedToDeleteItem)
		}
		return adjustCategoryCount(ctx, tx, userID, categoryID, -1)
	})
}

// SaveImage stores or replaces the photo of an item
func (r *ItemRepository) SaveImage(ctx context.Context, img *domain.ItemImage) error {
	query := `
		INSERT INTO item_images (item_id, content_type, data, blurhash, width, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE
		SET content_type = EXCLUDED.content_type,
		    data = EXCLUDED.data,
		    blurhash = EXCLUDED.blurhash,
		    width = EXCLUDED.width,
		    height = EXCLUDED.height,
		    created_at = EXCLUDED.created_at
	`
	_, err := r.db.Exec(ctx, query,
		img.ItemID,
		img.ContentType,
		img.Data,
		img.BlurHash,
		img.Width,
		img.Height,
		img.CreatedAt,
	)
	if err != nil {
		return notFoundOr(err, domain.ErrItemNotFound, ErrMsgFailedToSaveImage)
	}
	return nil
}

// GetImage returns the photo of one of the user's items
func (r *ItemRepository) GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error) {
	query := `
		SELECT img.item_id::text, img.content_type, img.data, img.blurhash, img.width, img.height, img.created_at
		FROM item_images img
		JOIN items i ON i.item_id = img.item_id
		WHERE img.item_id = $1 AND i.user_id = $2
	`
	var img domain.ItemImage
	err := r.db.QueryRow(ctx, query, itemID, userID).Scan(
		&img.ItemID,
		&img.ContentType,
		&img.Data,
		&img.BlurHash,
		&img.Width,
		&img.Height,
		&img.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, domain.ErrImageNotFound, ErrMsgFailedToGetImage)
	}
	return &img, nil
}

// DeleteImage removes the photo of one of the user's items
func (r *ItemRepository) DeleteImage(ctx context.Context, userID, itemID string) error {
	query := `
		DELETE FROM item_images img
		USING items i
		WHERE img.item_id = i.item_id AND img.item_id = $1 AND i.user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, itemID, userID)
	if err != nil {
		return notFoundOr(err, domain.ErrImageNotFound, ErrMsgFailedToDeleteImage)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

// SetGeneratedIcon replaces the item's icon and records where it came from
func (r *ItemRepository) SetGeneratedIcon(ctx context.Context, userID, itemID, icon string, source domain.IconSource) error {
	query := `
		UPDATE items
		SET generated_icon = $3, icon_source = $4, updated_at = NOW()
		WHERE item_id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, itemID, userID, icon, string(source))
	if err != nil {
		return notFoundOr(err, domain.ErrItemNotFound, ErrMsgFailedToSetGeneratedIcon)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
