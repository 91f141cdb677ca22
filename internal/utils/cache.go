package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a TTL'd LRU used for hot read paths. Mutating handlers must
// invalidate the keys they touch.
type Cache struct {
	lruCache *lru.Cache[string, CacheItem]
}

func NewCache(size int) *Cache {
	l, err := lru.New[string, CacheItem](size)
	if err != nil {
		panic(err) // only possible with a non-positive size
	}
	return &Cache{lruCache: l}
}

func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached value, or nil when absent or expired.
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

func (c *Cache) Delete(key string) {
	c.lruCache.Remove(key)
}
