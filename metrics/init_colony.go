package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initColonyMetrics() {
	r.AntsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "ants",
			Help:      "Number of agents in the colony",
		},
	)

	r.AntsCarryingFood = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "ants_carrying_food",
			Help:      "Number of agents on their way back to the nest",
		},
	)

	r.BestPathLength = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "best_path_length",
			Help:      "Length of the shortest start-end path found so far (0 while none)",
		},
	)

	r.BestPathHops = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "best_path_hops",
			Help:      "Number of edges on the best path",
		},
	)
}

func (r *Registry) initPheromoneMetrics() {
	r.PheromoneHighest = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "pheromone_highest",
			Help:      "Highest pheromone level over all edges",
		},
	)

	r.PheromoneTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "pheromone_total",
			Help:      "Sum of pheromone levels over all edges",
		},
	)

	r.PheromoneEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "pheromone_edge_level",
			Help:      "Per-edge pheromone levels, sampled after each evaporation",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.RunInfo = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_info",
			Help:      "Constant 1 labelled with the run id and the deposit strategy",
		},
		[]string{"run_id", "strategy"},
	)
}
