package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/database/postgres"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Item     repository.Item
	Category repository.Category
	Snapshot repository.UnlockSnapshot
	User     repository.User
	Review   repository.Review
	Stats    repository.Stats
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Item:     postgres.NewItemRepository(dbPool),
		Category: postgres.NewCategoryRepository(dbPool),
		Snapshot: postgres.NewSnapshotRepository(dbPool),
		User:     postgres.NewUserRepository(dbPool),
		Review:   postgres.NewReviewRepository(dbPool),
		Stats:    postgres.NewStatsRepository(dbPool),
	}
}
