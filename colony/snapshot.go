package colony

import (
	"slices"

	"github.com/katalvlaran/acopath/core"
)

// AntView is the render-facing state of one agent.
type AntView struct {
	ID      int         `json:"id"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Heading float64     `json:"heading"`
	HasFood bool        `json:"has_food"`
	From    core.NodeID `json:"from"`
	To      core.NodeID `json:"to"`
}

// EdgeView is the pheromone level of one edge.
type EdgeView struct {
	From      core.NodeID `json:"from"`
	To        core.NodeID `json:"to"`
	Pheromone float64     `json:"pheromone"`
}

// Improvement records a new global best path.
type Improvement struct {
	Tick   uint64        `json:"tick"`
	AntID  int           `json:"ant_id"`
	Length float64       `json:"length"`
	Path   []core.NodeID `json:"path"`
}

// Snapshot is the state after a tick. Every copy handed out by a Simulation owns
// its slices, so a reader may sort or edit them freely.
type Snapshot struct {
	RunID            string     `json:"run_id"`
	Tick             uint64     `json:"tick"`
	Evaporated       bool       `json:"evaporated"`
	Ants             []AntView  `json:"ants"`
	Edges            []EdgeView `json:"edges"`
	HighestPheromone float64    `json:"highest_pheromone"`
	TotalPheromone   float64    `json:"total_pheromone"`
	// BestLength is nil until some ant has completed an outbound trip.
	BestLength     *float64      `json:"best_length"`
	BestPath       []core.NodeID `json:"best_path"`
	TripsCompleted int           `json:"trips_completed"`
	Improvements   []Improvement `json:"improvements"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Ants = slices.Clone(s.Ants)
	c.Edges = slices.Clone(s.Edges)
	c.BestPath = slices.Clone(s.BestPath)
	if s.BestLength != nil {
		l := *s.BestLength
		c.BestLength = &l
	}
	if s.Improvements != nil {
		c.Improvements = make([]Improvement, len(s.Improvements))
		for i, imp := range s.Improvements {
			imp.Path = slices.Clone(imp.Path)
			c.Improvements[i] = imp
		}
	}
	return c
}

// Carrying counts ants that hold food.
func (s *Snapshot) Carrying() int {
	n := 0
	for _, a := range s.Ants {
		if a.HasFood {
			n++
		}
	}
	return n
}

// Observer receives every snapshot produced by Tick. Each observer gets its own
// copy.
type Observer interface {
	ObserveTick(s *Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s *Snapshot)

// ObserveTick calls f(s).
func (f ObserverFunc) ObserveTick(s *Snapshot) { f(s) }
