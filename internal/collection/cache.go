package collection

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// StatsCacheSchemaVersion is bumped whenever CollectionStats or the engine
// tables change, so entries computed by an older build are dropped.
const StatsCacheSchemaVersion = "1.0"

type cachedStatsEntry struct {
	Version string
	Day     string
	Stats   domain.CollectionStats
}

// statsCache memoizes computed stats per user. An entry is only valid on the
// calendar day it was computed, since the streak depends on "today".
//
// Every Invalidate bumps the generation of the user's stripe. A computation
// started before an Invalidate carries the older generation and is not
// stored, so a read racing a write can never repopulate the memo with stats
// that miss the write. Users sharing a stripe only cost an extra recompute.
type statsCache struct {
	lru *expirable.LRU[string, *cachedStatsEntry]

	mu          sync.Mutex
	generations []uint64
}

func newStatsCache(size int, ttl time.Duration) *statsCache {
	return &statsCache{
		lru:         expirable.NewLRU[string, *cachedStatsEntry](size, nil, ttl),
		generations: make([]uint64, StatsGenerationStripes),
	}
}

func (c *statsCache) stripe(userID string) int {
	return utils.Bucket(utils.StableHash(userID), len(c.generations))
}

// Get returns the memoized stats of userID for day
func (c *statsCache) Get(userID, day string) (domain.CollectionStats, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return domain.CollectionStats{}, false
	}
	if entry.Version != StatsCacheSchemaVersion || entry.Day != day {
		c.lru.Remove(userID)
		return domain.CollectionStats{}, false
	}
	return entry.Stats, true
}

// Generation is taken before reading the rows a computation is based on
func (c *statsCache) Generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[c.stripe(userID)]
}

// Set stores stats computed under generation gen. It reports false, storing
// nothing, when userID was invalidated since gen was taken.
func (c *statsCache) Set(userID, day string, gen uint64, stats domain.CollectionStats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[c.stripe(userID)] != gen {
		return false
	}
	c.lru.Add(userID, &cachedStatsEntry{
		Version: StatsCacheSchemaVersion,
		Day:     day,
		Stats:   stats,
	})
	return true
}

func (c *statsCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[c.stripe(userID)]++
	c.lru.Remove(userID)
}

func (c *statsCache) Len() int {
	return c.lru.Len()
}
