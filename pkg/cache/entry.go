package cache

import (
	"net/http"
	"time"
)

// RevalidateWindow is how long a stale entry stays in the backing store so
// a conditional request can still revalidate it.
const RevalidateWindow = 1 * time.Hour

// Entry represents a cached aoe4world response.
type Entry struct {
	// Data is the response body
	Data []byte `json:"data"`

	// ETag for conditional requests (If-None-Match)
	ETag string `json:"etag"`

	// Expires is when the entry becomes stale
	Expires time.Time `json:"expires"`

	// LastModified is when the data was last modified (from the last-modified header)
	LastModified time.Time `json:"last_modified"`

	// StatusCode is the HTTP status code of the cached response
	StatusCode int `json:"status_code"`

	// Headers are the response headers
	Headers http.Header `json:"headers"`

	// CachedAt is when we cached this response
	CachedAt time.Time `json:"cached_at"`
}

// IsExpired returns true if the cache entry is stale.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until the entry becomes stale.
// Returns 0 if already stale.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// HasValidator reports whether the entry carries an ETag or Last-Modified
// value usable for a conditional request.
func (e *Entry) HasValidator() bool {
	return e.ETag != "" || !e.LastModified.IsZero()
}

// StoreTTL returns how long the backing store should retain the entry.
// Entries with validators outlive their freshness window so a later request
// can revalidate them; entries without validators are dropped at expiry.
func (e *Entry) StoreTTL() time.Duration {
	ttl := e.TTL()
	if e.HasValidator() {
		return ttl + RevalidateWindow
	}
	return ttl
}
