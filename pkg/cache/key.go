package cache

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a cached aoe4world response.
type Key struct {
	// Path is the request path (e.g., "/players/1234/games")
	Path string

	// Query holds the query parameters (e.g., {"limit": ["50"], "page": ["2"]})
	Query url.Values
}

// KeyFromRequest derives the cache key for an outbound request.
func KeyFromRequest(req *http.Request) Key {
	return Key{
		Path:  req.URL.Path,
		Query: req.URL.Query(),
	}
}

// String generates a deterministic cache key string.
// Format: aoe4:path:query1=val1:query2=val2
//
// Example:
//
//	aoe4:players/1234/games:limit=50:page=2
func (k Key) String() string {
	parts := []string{"aoe4"}

	// Add path (normalized)
	path := strings.Trim(k.Path, "/")
	if path != "" {
		parts = append(parts, path)
	}

	// Add query params (sorted for determinism)
	if len(k.Query) > 0 {
		queryKeys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
