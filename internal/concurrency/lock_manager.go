package concurrency

import (
	"sync"

	"github.com/osse101/MonoCollector_Go/internal/utils"
)

// DefaultStripes is the stripe count used when NewLockManager gets n <= 0
const DefaultStripes = 64

// LockManager serializes work per key. Keys hash onto a fixed set of
// mutexes, so memory stays constant no matter how many users exist; two
// keys sharing a stripe simply wait on each other.
type LockManager struct {
	stripes []sync.Mutex
}

// NewLockManager creates a LockManager with n stripes
func NewLockManager(n int) *LockManager {
	if n <= 0 {
		n = DefaultStripes
	}
	return &LockManager{stripes: make([]sync.Mutex, n)}
}

// Lock acquires the lock for key and returns its release func
func (lm *LockManager) Lock(key string) (unlock func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// GetLock returns the mutex guarding key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	return &lm.stripes[utils.Bucket(utils.StableHash(key), len(lm.stripes))]
}
