package postgres

import "github.com/osse101/MonoCollector_Go/internal/repository"

var (
	_ repository.Item           = (*ItemRepository)(nil)
	_ repository.Category       = (*CategoryRepository)(nil)
	_ repository.UnlockSnapshot = (*SnapshotRepository)(nil)
	_ repository.User           = (*UserRepository)(nil)
	_ repository.Review         = (*ReviewRepository)(nil)
	_ repository.Stats          = (*StatsRepository)(nil)
)
