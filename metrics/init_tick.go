package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTickMetrics() {
	r.TicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "ticks_total",
			Help:      "Total number of simulation ticks",
		},
	)

	r.EvaporationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaporations_total",
			Help:      "Total number of evaporation passes over the graph",
		},
	)

	r.TripsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trips_total",
			Help:      "Total number of completed nest-food-nest round trips",
		},
	)

	r.ImprovementsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "best_path_improvements_total",
			Help:      "Total number of times the global best path got shorter",
		},
	)
}
