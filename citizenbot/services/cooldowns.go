package services

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Cooldowns remembers when a key last acted. The oldest keys are forgotten once size is reached.
type Cooldowns struct {
	mu     sync.Mutex
	window time.Duration
	seen   *lru.Cache
}

func NewCooldowns(size int, window time.Duration) *Cooldowns {
	cache, _ := lru.New(size)
	return &Cooldowns{window: window, seen: cache}
}

// Allow reports whether key may act at now, and if so starts a new window.
func (c *Cooldowns) Allow(key string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.seen.Get(key); ok {
		if now.Sub(v.(time.Time)) < c.window {
			return false
		}
	}
	c.seen.Add(key, now)
	return true
}
