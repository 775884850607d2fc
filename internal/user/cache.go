package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// CacheConfig sizes the user cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the user cache defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string       `json:"version"`
	User     *domain.User `json:"user"`
	CachedAt time.Time    `json:"cached_at"`
}

// userCache provides an in-memory LRU cache for user lookups by id
// with time-based expiration and version-based invalidation to prevent stale data.
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(config CacheConfig) *userCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get returns a copy of the cached user. Entries written under another
// schema version are dropped.
func (c *userCache) Get(userID string) (*domain.User, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return cloneUser(entry.User), true
}

// Set stores a copy of user
func (c *userCache) Set(user *domain.User) {
	c.lru.Add(user.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     cloneUser(user),
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user from the cache
func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Clear removes all entries from the cache
func (c *userCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// cloneUser keeps callers from mutating cached state through the links slice
func cloneUser(u *domain.User) *domain.User {
	cp := *u
	if u.Links != nil {
		cp.Links = append([]domain.AccountLink(nil), u.Links...)
	}
	return &cp
}
