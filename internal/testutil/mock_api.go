// Package testutil provides testing utilities for the aoe4world client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockAPI is a configurable mock aoe4world server for testing.
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	ConditionalCount  int
	LastRequestHeader http.Header
	requests          []string
}

// NewMockAPI creates a new mock aoe4world server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.requests = append(mock.requests, r.Method+" "+r.URL.String())

		// Track conditional requests
		if r.Header.Get("If-None-Match") != "" || r.Header.Get("If-Modified-Since") != "" {
			mock.ConditionalCount++
		}
		mock.mu.Unlock()

		// Check for custom handler
		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Default handler
		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.ConditionalCount = 0
	m.LastRequestHeader = nil
	m.requests = nil
}

// Requests returns every request seen so far as "METHOD /path?query",
// in arrival order.
func (m *MockAPI) Requests() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

// SetHandler sets a custom handler for a specific path.
func (m *MockAPI) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		// Add delay if specified
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		// Set headers
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		// Write status and body
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// PaginateOptions adjusts how ServePaginated slices its items.
type PaginateOptions struct {
	// OmitTotalCount drops the total_count field from every page, the
	// way endpoints that cannot cheaply count their data answer.
	OmitTotalCount bool
	// PageDelays delays specific pages, keyed by 1-indexed page number.
	// Used to scramble completion order in concurrency tests.
	PageDelays map[int]time.Duration
	// FailPages fails specific pages with the given HTTP status.
	FailPages map[int]int
}

// ServePaginated registers a handler that slices items into pages
// honoring the limit and page query parameters, answering the way
// aoe4world list endpoints do. itemsKey names the item array field of
// the envelope, e.g. "games" or "players".
func (m *MockAPI) ServePaginated(path, itemsKey string, items []json.RawMessage, opts PaginateOptions) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 50
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page <= 0 {
			page = 1
		}

		if d := opts.PageDelays[page]; d > 0 {
			time.Sleep(d)
		}
		if status := opts.FailPages[page]; status != 0 {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"error": %q}`, http.StatusText(status))
			return
		}

		offset := (page - 1) * limit
		if offset > len(items) {
			offset = len(items)
		}
		end := offset + limit
		if end > len(items) {
			end = len(items)
		}
		pageItems := items[offset:end]
		if pageItems == nil {
			pageItems = []json.RawMessage{}
		}

		envelope := map[string]any{
			"page":     page,
			"per_page": limit,
			"count":    len(pageItems),
			"offset":   offset,
			itemsKey:   pageItems,
		}
		if !opts.OmitTotalCount {
			envelope["total_count"] = len(items)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(envelope)
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockAPI) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetConditionalCount returns the number of conditional requests.
func (m *MockAPI) GetConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ConditionalCount
}

// defaultHandler answers unconfigured paths with a plain JSON 200.
func (m *MockAPI) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// GameJSON builds a minimal game fixture with the given ID.
func GameJSON(id int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"game_id": %d,
		"started_at": "2025-03-02T18:45:11.000Z",
		"duration": 1600,
		"map": "Dry Arabia",
		"kind": "rm_1v1",
		"leaderboard": "rm_1v1",
		"season": 10,
		"teams": [
			[{"player": {"name": "PlayerA", "profile_id": 1, "result": "win", "civilization": "english", "rating": 1500, "rating_diff": 12}}],
			[{"player": {"name": "PlayerB", "profile_id": 2, "result": "loss", "civilization": "mongols", "rating": 1490, "rating_diff": -12}}]
		]
	}`, id))
}

// ProfileJSON builds a minimal profile fixture.
func ProfileJSON(id int, name string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"name": %q,
		"profile_id": %d,
		"site_url": "https://aoe4world.com/players/%d"
	}`, name, id, id))
}

// LeaderboardEntryJSON builds a minimal standings row.
func LeaderboardEntryJSON(rank int, name string, rating int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"name": %q,
		"profile_id": %d,
		"rank": %d,
		"rating": %d,
		"rank_level": "conqueror_3"
	}`, name, rank*1000, rank, rating))
}

// NewJSONResponse creates a standard 200 OK JSON response.
func NewJSONResponse(data string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       data,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewCachedJSONResponse creates a 200 OK response carrying cache
// validators, the way a CDN-fronted endpoint answers.
func NewCachedJSONResponse(data, etag string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       data,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
			"ETag":         etag,
			"Expires":      time.Now().Add(5 * time.Minute).Format(http.TimeFormat),
		},
	}
}

// NewRateLimitResponse creates a 429 Too Many Requests response.
func NewRateLimitResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": "Rate limit exceeded"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "Internal server error"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewConditionalHandler creates a handler that responds with 304 for
// requests revalidating the given ETag.
func NewConditionalHandler(etag string, data string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		// Check If-None-Match header
		if r.Header.Get("If-None-Match") == etag {
			w.Header().Set("Expires", time.Now().Add(5*time.Minute).Format(http.TimeFormat))
			w.WriteHeader(http.StatusNotModified)
			return
		}

		// Full response
		w.Header().Set("ETag", etag)
		w.Header().Set("Expires", time.Now().Add(5*time.Minute).Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(data))
	}
}
