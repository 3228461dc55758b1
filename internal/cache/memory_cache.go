package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultSweepInterval is how often an InMemoryCache drops expired entries.
const DefaultSweepInterval = time.Minute

// InMemoryCache keeps entries in process. Expired entries are dropped on
// access and by a background sweep that stops on Close.
type InMemoryCache struct {
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]memoryEntry

	stop      chan struct{}
	closeOnce sync.Once
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

func NewInMemoryCache(logger *zap.Logger) *InMemoryCache {
	return NewInMemoryCacheWithSweep(logger, DefaultSweepInterval)
}

// NewInMemoryCacheWithSweep starts a cache whose sweep runs every interval.
func NewInMemoryCacheWithSweep(logger *zap.Logger, interval time.Duration) *InMemoryCache {
	c := &InMemoryCache{
		logger:  logger,
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}
	go c.sweep(interval)
	return c
}

func (c *InMemoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			if n := c.removeExpired(now); n > 0 {
				c.logger.Debug("Swept expired cache entries", zap.Int("count", n))
			}
		}
	}
}

// removeExpired drops every entry expired at now and reports how many.
func (c *InMemoryCache) removeExpired(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// lookup returns the live entry for key, dropping it if expired.
// Callers hold c.mu.
func (c *InMemoryCache) lookup(key string) (memoryEntry, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if entry.expired(time.Now()) {
		delete(c.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (c *InMemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lookup(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *InMemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.lookup(key)
	return ok, nil
}

func (c *InMemoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix, wildcard := strings.CutSuffix(pattern, "*")
	for key := range c.entries {
		if key == pattern || (wildcard && strings.HasPrefix(key, prefix)) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Len reports the number of entries held, expired or not.
func (c *InMemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the sweep. It is safe to call more than once.
func (c *InMemoryCache) Close() error {
	c.closeOnce.Do(func() { close(c.stop) })
	return nil
}
