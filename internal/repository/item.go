package repository

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Item defines the interface for item persistence. Every method is scoped to
// the owning user; items of other users are reported as not found.
type Item interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error)
	// UpdateItem persists every mutable field and moves the category counter
	// when the category changed.
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, userID, itemID string) error

	SaveImage(ctx context.Context, img *domain.ItemImage) error
	GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error)
	DeleteImage(ctx context.Context, userID, itemID string) error

	SetGeneratedIcon(ctx context.Context, userID, itemID, icon string, source domain.IconSource) error
}
