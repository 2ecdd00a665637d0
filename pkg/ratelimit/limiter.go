// Package ratelimit paces outbound aoe4world requests.
//
// aoe4world publishes no rate limit headers, so pacing is a client-side
// politeness budget: a token bucket that smooths the bursts produced by
// the concurrent page fetcher and keeps the sustained request rate modest.
package ratelimit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultRPS is the sustained request rate.
	DefaultRPS = 10.0

	// DefaultBurst covers a full fetch window plus a probe request.
	DefaultBurst = 10
)

// Prometheus metrics for request pacing.
var (
	throttledRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aoe4world_ratelimit_throttled_total",
		Help: "Total number of requests delayed by the local rate limiter",
	})

	throttleWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aoe4world_ratelimit_wait_seconds",
		Help:    "Time spent waiting for a request slot",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	})
)

// Limiter gates outbound requests with a token bucket.
type Limiter struct {
	bucket *rate.Limiter
	logger zerolog.Logger
}

// New creates a limiter allowing rps sustained requests per second with
// the given burst headroom. Non-positive values fall back to defaults.
func New(rps float64, burst int) *Limiter {
	if rps <= 0 {
		rps = DefaultRPS
	}
	if burst <= 0 {
		burst = DefaultBurst
	}

	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
		logger: log.With().Str("component", "ratelimit").Logger(),
	}
}

// Wait blocks until a request slot is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := l.bucket.Wait(ctx); err != nil {
		return err
	}

	waited := time.Since(start)
	if waited > time.Millisecond {
		throttledRequestsTotal.Inc()
		throttleWaitSeconds.Observe(waited.Seconds())
		l.logger.Debug().
			Dur("waited", waited).
			Msg("Request throttled")
	}

	return nil
}

// Allow reports whether a request may proceed immediately, consuming a
// slot when it may.
func (l *Limiter) Allow() bool {
	return l.bucket.Allow()
}

// Limit returns the sustained request rate.
func (l *Limiter) Limit() float64 {
	return float64(l.bucket.Limit())
}

// Burst returns the burst headroom.
func (l *Limiter) Burst() int {
	return l.bucket.Burst()
}
