// Package metrics provides the centralized Prometheus metrics registry for the
// aoe4world client. All metrics are defined in their respective packages
// (client, cache, ratelimit, pagination) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the aoe4world client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - aoe4world_requests_total{status} (Counter): Total requests by outcome status
//     (HTTP status code, "cached", or "error")
//   - aoe4world_request_duration_seconds (Histogram): Request duration
//   - aoe4world_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Retry Metrics (pkg/client):
//   - aoe4world_retries_total{error_class} (Counter): Retry attempts by error class
//   - aoe4world_retry_backoff_seconds{error_class} (Histogram): Backoff duration by error class
//   - aoe4world_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Cache Metrics (pkg/cache):
//   - aoe4world_cache_hits_total{layer} (Counter): Cache hits by layer (memory, redis)
//   - aoe4world_cache_misses_total{layer} (Counter): Cache misses by layer
//   - aoe4world_cache_errors_total{operation} (Counter): Cache operation errors (get, set, delete)
//   - aoe4world_conditional_requests_total (Counter): Conditional requests sent with If-None-Match
//   - aoe4world_not_modified_responses_total (Counter): 304 Not Modified responses
//
// Rate Limit Metrics (pkg/ratelimit):
//   - aoe4world_ratelimit_throttled_total (Counter): Requests delayed by the local limiter
//   - aoe4world_ratelimit_wait_seconds (Histogram): Time spent waiting for a request slot
//
// Pagination Metrics (pkg/pagination):
//   - aoe4world_pages_fetched_total{outcome} (Counter): Page fetches by outcome (success, error)
//   - aoe4world_page_fetch_duration_seconds (Histogram): Duration of single page fetches
//   - aoe4world_streams_finished_total{reason} (Counter): Item streams finished by reason
//     (completed, short_page, item_limit, error, abandoned, empty)
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(aoe4world_cache_hits_total[5m])) /
//   (sum(rate(aoe4world_cache_hits_total[5m])) + sum(rate(aoe4world_cache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(aoe4world_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(aoe4world_request_duration_seconds_bucket[5m]))
//
//   # 304 Response Rate
//   rate(aoe4world_not_modified_responses_total[5m]) / rate(aoe4world_requests_total[5m])
//
//   # Streams Ending in Errors
//   rate(aoe4world_streams_finished_total{reason="error"}[5m])
