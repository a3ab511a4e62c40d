package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Layout Metrics
	LayoutBuildsTotal      *prometheus.CounterVec
	LayoutBuildDuration    prometheus.Histogram
	LayoutActorsProcessed  prometheus.Gauge
	LayoutCurvesBuilt      prometheus.Gauge
	LayoutPairGroups       prometheus.Gauge
	LayoutGroupsDiverged   prometheus.Gauge
	LayoutDirectorColumns  prometheus.Gauge
	LayoutSkippedMovieRefs prometheus.Gauge

	// Catalog Metrics
	CatalogPersonsTotal prometheus.Gauge
	CatalogMoviesTotal  prometheus.Gauge

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	SlowQueries   *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initHTTPMetrics()
	r.initLayoutMetrics()
	r.initCatalogMetrics()
	r.initQueryMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
