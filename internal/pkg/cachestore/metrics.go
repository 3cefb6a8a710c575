package cachestore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache hits per entity kind.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yoloeats_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"entity"},
	)

	// CacheMisses counts misses, including entries that failed to decode.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yoloeats_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"entity"},
	)

	// CacheErrors counts degraded cache operations by operation name.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yoloeats_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"entity", "operation"},
	)
)
