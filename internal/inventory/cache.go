package inventory

import (
	"context"
	"sync"
)

const keySuffix = "-inventory"

// CacheKey scopes a product id to inventory entries so the cache can be
// shared with other uses without collisions.
func CacheKey(productID string) string {
	return productID + keySuffix
}

// Cache is the key-value store quantities live in. Entries never expire.
type Cache interface {
	Get(ctx context.Context, key string) (qty int, found bool, err error)
	Set(ctx context.Context, key string, qty int) error
}

// MemCache is a process-local Cache. Entries live until the process exits.
type MemCache struct {
	mu sync.RWMutex
	m  map[string]int
}

func NewMemCache() *MemCache {
	return &MemCache{m: map[string]int{}}
}

func (c *MemCache) Get(_ context.Context, key string) (int, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok, nil
}

func (c *MemCache) Set(_ context.Context, key string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = qty
	return nil
}

func (c *MemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
