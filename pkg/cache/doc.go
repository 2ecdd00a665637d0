// Package cache provides response caching for the aoe4world API.
//
// Two Store backends are available:
//
//   - Memory: an in-process TTL cache for single binary deployments
//   - Redis: a shared cache for multi-process deployments
//
// Both implement ETag-aware caching with the following features:
//
// - Freshness from the Expires header, with a default window as fallback
// - ETag support for conditional requests (If-None-Match)
// - Last-Modified support (If-Modified-Since)
// - Stale entries retained for revalidation instead of being dropped
// - Prometheus metrics for observability
// - Deterministic cache key generation
//
// # Basic Usage
//
//	// In-process store
//	store := cache.NewMemory()
//	defer store.Close()
//
//	// Or a shared Redis store
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//	store = cache.NewRedis(redisClient)
//
//	// Create cache key
//	key := cache.Key{
//		Path:  "/players/1234/games",
//		Query: url.Values{"limit": []string{"50"}, "page": []string{"2"}},
//	}
//
//	// Get from cache
//	entry, err := store.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// Cache miss - fetch from the API
//	}
//
// # HTTP Response Caching
//
//	// Convert HTTP response to cache entry
//	entry, err := cache.ResponseToEntry(resp)
//	if err != nil {
//		return err
//	}
//
//	// Store in cache
//	if err := store.Set(ctx, key, entry); err != nil {
//		return err
//	}
//
// # Conditional Requests
//
// Stale entries keep their body and validators for up to RevalidateWindow.
// A later request sends the validators and a 304 answer refreshes the entry
// without re-downloading the body:
//
//	if entry.IsExpired() && cache.ShouldRevalidate(entry) {
//		cache.SetConditionalHeaders(req, entry)
//		// A 304 response means the cached body is still current:
//		// cache.RefreshEntry(entry, resp) and reuse the entry.
//	}
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - aoe4world_cache_hits_total{layer} - Cache hits
//   - aoe4world_cache_misses_total{layer} - Cache misses
//   - aoe4world_cache_errors_total{operation} - Cache operation errors
//   - aoe4world_conditional_requests_total - Conditional requests sent
//   - aoe4world_not_modified_responses_total - 304 answers received
package cache
