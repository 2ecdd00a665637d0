package cache

import (
	"context"
	"fmt"

	"github.com/jellydator/ttlcache/v3"
)

// Memory is an in-process Store backed by a TTL cache. It suits single
// binary deployments that have no shared cache available.
type Memory struct {
	items *ttlcache.Cache[string, *Entry]
}

// NewMemory creates an in-memory store and starts its eviction loop.
func NewMemory() *Memory {
	items := ttlcache.New[string, *Entry](
		ttlcache.WithDisableTouchOnHit[string, *Entry](),
	)
	go items.Start()

	return &Memory{items: items}
}

// Get retrieves a cache entry.
// Returns ErrCacheMiss if the key is not present.
func (m *Memory) Get(ctx context.Context, key Key) (*Entry, error) {
	item := m.items.Get(key.String())
	if item == nil {
		CacheMisses.WithLabelValues("memory").Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues("memory").Inc()
	return item.Value(), nil
}

// Set stores a cache entry for its retention window.
func (m *Memory) Set(ctx context.Context, key Key, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	ttl := entry.StoreTTL()
	if ttl <= 0 {
		// Nothing left to retain
		return nil
	}

	m.items.Set(key.String(), entry, ttl)
	return nil
}

// Delete removes a cache entry.
func (m *Memory) Delete(ctx context.Context, key Key) error {
	m.items.Delete(key.String())
	return nil
}

// Close stops the eviction loop.
func (m *Memory) Close() error {
	m.items.Stop()
	return nil
}
