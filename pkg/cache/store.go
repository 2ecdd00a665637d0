package cache

import (
	"context"
	"errors"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Store is a backing store for cached responses. Implementations retain
// stale entries for up to RevalidateWindow past expiry so callers can
// revalidate them with conditional requests.
type Store interface {
	// Get retrieves a cache entry. It returns ErrCacheMiss when the key is
	// absent. Stale entries are returned as-is, the caller checks IsExpired.
	Get(ctx context.Context, key Key) (*Entry, error)

	// Set stores a cache entry for its StoreTTL. Entries past their
	// retention window are silently dropped.
	Set(ctx context.Context, key Key, entry *Entry) error

	// Delete removes a cache entry.
	Delete(ctx context.Context, key Key) error

	// Close releases store resources.
	Close() error
}
