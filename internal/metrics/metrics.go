package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LifecycleTransitions counts engine calls by operation and result code.
	LifecycleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailops_lifecycle_transitions_total",
			Help: "Resource lifecycle operations by outcome",
		},
		[]string{"operation", "kind", "code"},
	)

	// ImportRows counts bulk import rows by result (created|failed|skipped).
	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailops_import_rows_total",
			Help: "Bulk import rows by result",
		},
		[]string{"kind", "result"},
	)

	// StalePendingReturns is the number of server returns waiting for approval too long, per team.
	StalePendingReturns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mailops_stale_pending_returns",
			Help: "Server returns pending approval for longer than the configured threshold",
		},
		[]string{"team_id"},
	)

	// CacheInvalidationFailures counts view cache invalidations that could not reach the cache.
	CacheInvalidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mailops_cache_invalidation_failures_total",
			Help: "View cache invalidations that failed",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mailops_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
