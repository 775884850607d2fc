package bootstrap

import (
	"github.com/osse101/MonoCollector_Go/internal/category"
	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/config"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/icon"
	"github.com/osse101/MonoCollector_Go/internal/item"
	"github.com/osse101/MonoCollector_Go/internal/review"
	"github.com/osse101/MonoCollector_Go/internal/server"
	"github.com/osse101/MonoCollector_Go/internal/stats"
	"github.com/osse101/MonoCollector_Go/internal/user"
)

// InitializeServices wires every application service. Services publish
// through publisher so that failed deliveries are retried.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher event.Bus) server.Services {
	icons := icon.NewGenerator(cfg.NameIconCacheSize)
	userCache := user.CacheConfig{Size: cfg.UserCacheSize, TTL: cfg.UserCacheTTL}
	statsCache := collection.CacheConfig{Size: cfg.StatsCacheSize, TTL: cfg.StatsCacheTTL}

	return server.Services{
		Item:       item.NewService(repos.Item, repos.Category, icons, publisher, cfg.MaxImageBytes),
		Category:   category.NewService(repos.Category, publisher),
		User:       user.NewService(repos.User, publisher, userCache),
		Collection: collection.NewServiceWithCache(repos.Item, repos.Category, repos.Snapshot, publisher, cfg.Location, statsCache),
		Review:     review.NewService(repos.Review, publisher),
		Stats:      stats.NewService(repos.Stats, cfg.Location),
	}
}
