package repository

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// Category defines the interface for category persistence
type Category interface {
	// ListCategories returns the defaults plus the user's custom categories
	// by sort order, with the user's item counts filled in.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	GetCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	// DeleteCategory removes a custom category and moves its items to "other"
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	// SyncDefaultCategories upserts the shared default categories
	SyncDefaultCategories(ctx context.Context, defaults []domain.Category) (domain.CategorySyncResult, error)
}
