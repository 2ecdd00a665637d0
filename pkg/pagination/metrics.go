package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the stream engine.
var (
	pagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoe4world_pages_fetched_total",
			Help: "Page fetches issued by the stream engine by outcome (success, error)",
		},
		[]string{"outcome"},
	)

	pageFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aoe4world_page_fetch_duration_seconds",
			Help:    "Duration of single page fetches including the probe request",
			Buckets: prometheus.DefBuckets,
		},
	)

	streamsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aoe4world_streams_finished_total",
			Help: "Item streams finished by reason (completed, short_page, item_limit, error, abandoned, empty)",
		},
		[]string{"reason"},
	)
)
