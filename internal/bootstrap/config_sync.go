package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// SyncDefaultCategories reconciles the built-in categories in the database
// with domain.DefaultCategories. Rows that already match are left untouched.
func SyncDefaultCategories(ctx context.Context, categoryRepo repository.Category) error {
	slog.Info(LogMsgSyncingDefaultCategories)

	result, err := categoryRepo.SyncDefaultCategories(ctx, domain.DefaultCategories)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncDefaults, err)
	}

	if result.Inserted > 0 || result.Updated > 0 {
		slog.Info(LogMsgDefaultCategoriesSynced,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"unchanged", result.Unchanged)
	} else {
		slog.Info(LogMsgDefaultCategoriesUnchanged)
	}

	return nil
}
