package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "espalier_api_requests_total",
		Help: "Upstream design API requests by endpoint and status code.",
	}, []string{"endpoint", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "espalier_api_request_duration_seconds",
		Help:    "Upstream design API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "espalier_cache_requests_total",
		Help: "Document cache lookups by outcome (hit or miss).",
	}, []string{"outcome"})

	parses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "espalier_parses_total",
		Help: "Design documents simplified.",
	})

	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "espalier_parse_duration_seconds",
		Help:    "Time spent simplifying one design document.",
		Buckets: prometheus.DefBuckets,
	})

	simplifiedNodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "espalier_simplified_nodes_total",
		Help: "Nodes emitted across all simplified documents.",
	})
)

// ObserveAPIRequest records one upstream request.
func ObserveAPIRequest(endpoint, status string, elapsed time.Duration) {
	apiRequests.WithLabelValues(endpoint, status).Inc()
	apiRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a cache hit or miss.
func ObserveCacheLookup(hit bool) {
	if hit {
		cacheHits.WithLabelValues("hit").Inc()
	} else {
		cacheHits.WithLabelValues("miss").Inc()
	}
}

// ObserveParse records one completed simplification and the number of nodes
// it produced.
func ObserveParse(elapsed time.Duration, nodes int) {
	parses.Inc()
	parseDuration.Observe(elapsed.Seconds())
	simplifiedNodes.Add(float64(nodes))
}
