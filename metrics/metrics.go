package metrics

import (
	"github.com/katalvlaran/acopath/colony"
)

// SetRunInfo records the run identity. Only one run is exported at a time.
func (r *Registry) SetRunInfo(runID, strategy string, ants int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.RunInfo.Reset()
	r.RunInfo.WithLabelValues(runID, strategy).Set(1)
	r.AntsTotal.Set(float64(ants))
}

// ObserveTick implements colony.Observer.
func (r *Registry) ObserveTick(s *colony.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.TicksTotal.Inc()
	r.TripsTotal.Add(float64(s.TripsCompleted))
	r.ImprovementsTotal.Add(float64(len(s.Improvements)))

	r.AntsCarryingFood.Set(float64(s.Carrying()))
	if s.BestLength != nil {
		r.BestPathLength.Set(*s.BestLength)
		r.BestPathHops.Set(float64(len(s.BestPath) - 1))
	}

	r.PheromoneHighest.Set(s.HighestPheromone)
	r.PheromoneTotal.Set(s.TotalPheromone)
	if s.Evaporated {
		r.EvaporationsTotal.Inc()
		for _, e := range s.Edges {
			r.PheromoneEdges.Observe(e.Pheromone)
		}
	}
}

var _ colony.Observer = (*Registry)(nil)
