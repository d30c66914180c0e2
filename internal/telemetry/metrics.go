// SPDX-License-Identifier: MIT

package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup outcomes for RecordCacheResult.
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheShared = "shared" // a concurrent caller computed the value
)

var (
	// bfsRuns counts BFS tree constructions by caller.
	bfsRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sixdeg_bfs_runs_total",
		Help: "Total BFS tree constructions",
	}, []string{"caller"})

	// separationCache counts average-separation cache lookups by outcome.
	separationCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sixdeg_separation_cache_total",
		Help: "Average separation cache lookups by result",
	}, []string{"result"})

	// rankDuration tracks full center-ranking latency.
	rankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sixdeg_rank_duration_seconds",
		Help:    "Center ranking duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})

	// buildSkipped counts memberships skipped while building graphs.
	buildSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sixdeg_build_skipped_records_total",
		Help: "Total membership records skipped during graph builds",
	})
)

// RecordBFSRun counts one BFS run started by caller.
func RecordBFSRun(caller string) {
	bfsRuns.WithLabelValues(caller).Inc()
}

// RecordCacheResult counts one cache lookup with the given outcome.
func RecordCacheResult(result string) {
	separationCache.WithLabelValues(result).Inc()
}

// ObserveRankDuration records how long one ranking pass took.
func ObserveRankDuration(d time.Duration) {
	rankDuration.Observe(d.Seconds())
}

// RecordBuildSkipped adds n skipped records. Non-positive n is ignored.
func RecordBuildSkipped(n int) {
	if n > 0 {
		buildSkipped.Add(float64(n))
	}
}
