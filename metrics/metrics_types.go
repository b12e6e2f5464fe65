// Package metrics exports a running colony as Prometheus metrics. A Registry
// is a colony.Observer: register it with colony.WithObserver and every tick
// updates the counters and gauges.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "acopath"

// Registry holds all metrics of one process.
type Registry struct {
	// Tick Metrics
	TicksTotal        prometheus.Counter
	EvaporationsTotal prometheus.Counter
	TripsTotal        prometheus.Counter
	ImprovementsTotal prometheus.Counter

	// Colony Metrics
	AntsTotal        prometheus.Gauge
	AntsCarryingFood prometheus.Gauge
	BestPathLength   prometheus.Gauge
	BestPathHops     prometheus.Gauge

	// Pheromone Metrics
	PheromoneHighest prometheus.Gauge
	PheromoneTotal   prometheus.Gauge
	PheromoneEdges   prometheus.Histogram

	// Run Metrics
	RunInfo *prometheus.GaugeVec

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initTickMetrics()
	r.initColonyMetrics()
	r.initPheromoneMetrics()
	r.initRunMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
