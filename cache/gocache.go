package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache is a simple in-memory TTL cache built on go-cache. The chart
// service uses it so that reopening a detail view within the TTL does not
// re-fetch the same history series.
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves the value for a key, reporting whether it was present
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, false
	}

	return data, true
}

// Set stores a value with the given TTL. A zero TTL uses the cache's
// default expiration.
func (gc *GoCache) Set(key string, value []byte, ttl time.Duration) {
	gc.cache.Set(key, value, ttl)
}

// Delete removes a key from the cache
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
