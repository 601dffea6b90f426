// Package observability provides the Prometheus metrics collector and the
// OpenTelemetry tracing bootstrap.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	SummariesComputed prometheus.Counter
	MoodsSaved        prometheus.Counter

	// Store metrics
	StoreOperations *prometheus.CounterVec
}

// NewCollector creates a metrics collector with its own registry so tests
// can construct collectors independently without duplicate registration.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	summariesComputed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_summaries_total",
			Help:      "Total number of progress summaries computed",
		},
	)

	moodsSaved := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moods_saved_total",
			Help:      "Total number of mood check-ins saved",
		},
	)

	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of record-store operations",
		},
		[]string{"operation", "collection", "status"},
	)

	registry.MustRegister(httpRequests, httpDuration, summariesComputed, moodsSaved, storeOperations)

	return &Collector{
		registry:          registry,
		HTTPRequests:      httpRequests,
		HTTPDuration:      httpDuration,
		SummariesComputed: summariesComputed,
		MoodsSaved:        moodsSaved,
		StoreOperations:   storeOperations,
	}
}

// Handler returns the /metrics endpoint handler for this collector.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
