// Package cache provides ImageCache implementations: a bounded in-process LRU and Redis.
package cache

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"sitecms/internal/domain"
)

// KeyFor returns the cache key for a compressed image payload. Keys are content addressed,
// so an updated record never reads a stale entry.
func KeyFor(compressed string) string {
	sum := sha256.Sum256([]byte(compressed))
	return "img:" + hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	key       string
	value     string
	expiresAt time.Time
}

// MemoryCache is a thread-safe LRU cache with a per-entry TTL.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List
	items      map[string]*list.Element
	now        func() time.Time
}

var _ domain.ImageCache = (*MemoryCache)(nil)

// NewMemoryCache returns a MemoryCache holding at most maxEntries values for ttl each.
// A zero ttl keeps entries until evicted; maxEntries below 1 is treated as 1.
func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get returns the value for key and whether it was present and fresh.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	entry := el.Value.(*memoryEntry)
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.removeElement(el)
		return "", false
	}
	c.order.MoveToFront(el)
	return entry.value, true
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return nil
	}
	c.items[key] = c.order.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.maxEntries {
		c.removeElement(c.order.Back())
	}
	return nil
}

// Len returns the number of entries currently held.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *MemoryCache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*memoryEntry).key)
}
