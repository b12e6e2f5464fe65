package colony

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/acopath/ant"
	"github.com/katalvlaran/acopath/bestpath"
	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/dijkstra"
	"github.com/katalvlaran/acopath/logging"
	"github.com/katalvlaran/acopath/rng"
)

var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("colony: graph is nil")

	// ErrAntCountChanged is returned by UpdateConfig when the ant count differs;
	// agents are created once per run.
	ErrAntCountChanged = errors.New("colony: ant count cannot change during a run")

	// ErrStop may be returned by a Drive callback to end the run without error.
	ErrStop = errors.New("colony: stop")
)

// Simulation is one ACO run over a graph.
type Simulation struct {
	mu sync.Mutex

	g      *core.Graph
	cfg    config.SimulationConfig
	src    rng.Source
	best   *bestpath.Tracker
	agents []*ant.Agent

	tick         uint64
	trips        int
	evaporations int
	optimal      float64
	last         Snapshot

	log       *slog.Logger
	observers []Observer
	runID     uuid.UUID
}

// New validates cfg, aligns the graph's pheromone bounds with it, puts every
// edge back on the floor and creates cfg.Ants agents on the start node.
//
// The graph becomes owned by the Simulation; it must not be mutated elsewhere
// while the run is alive.
func New(g *core.Graph, cfg config.SimulationConfig, opts ...Option) (*Simulation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("colony: %w", err)
	}

	s := &Simulation{
		g:    g,
		cfg:  cfg,
		best: bestpath.New(),
		log:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.New(cfg.Seed)
	}
	if s.runID == uuid.Nil {
		s.runID = uuid.New()
	}

	g.SetPheromoneBounds(cfg.MinPheromoneLevel, cfg.MaxPheromoneLevel, cfg.ClampToMax)
	g.ResetPheromone()

	s.agents = make([]*ant.Agent, cfg.Ants)
	for i := range s.agents {
		s.agents[i] = ant.New(i, g, cfg.StaggerStart)
	}

	s.optimal = math.Inf(1)
	if length, _, err := dijkstra.ShortestPath(g, g.Start(), g.End()); err == nil {
		s.optimal = length
	}

	s.last = s.snapshot(false, 0, nil)
	s.log.Info("simulation created",
		"run", s.runID.String(),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"ants", cfg.Ants,
		"strategy", string(cfg.IncrementStrategy),
		"ticks_per_second", cfg.TicksPerSecond(),
	)
	return s, nil
}

// RunID returns the run identifier.
func (s *Simulation) RunID() uuid.UUID { return s.runID }

// Graph returns the simulated graph. Read it only through Snapshot while a
// driver is ticking.
func (s *Simulation) Graph() *core.Graph { return s.g }

// Config returns the active configuration.
func (s *Simulation) Config() config.SimulationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// UpdateConfig replaces the running configuration after validating it.
// Pheromone bounds take effect immediately on the graph. Seed and StaggerStart
// are only read by New.
func (s *Simulation) UpdateConfig(cfg config.SimulationConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("colony: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.Ants != s.cfg.Ants {
		return fmt.Errorf("%w: %d → %d", ErrAntCountChanged, s.cfg.Ants, cfg.Ants)
	}
	s.g.SetPheromoneBounds(cfg.MinPheromoneLevel, cfg.MaxPheromoneLevel, cfg.ClampToMax)
	s.cfg = cfg
	s.log.Info("config updated",
		"run", s.runID.String(),
		"tick", s.tick,
		"alpha", cfg.Alpha,
		"beta", cfg.Beta,
		"evaporation", cfg.EvaporationRatePerSecond,
		"speed", cfg.AntSpeed,
		"strategy", string(cfg.IncrementStrategy),
	)
	return nil
}

// Tick advances the simulation by one tick and returns the resulting snapshot.
func (s *Simulation) Tick() Snapshot {
	s.mu.Lock()
	snap := s.step()
	observers := s.observers
	s.mu.Unlock()

	for _, o := range observers {
		c := snap.Clone()
		o.ObserveTick(&c)
	}
	return snap
}

func (s *Simulation) step() Snapshot {
	w := ant.World{Graph: s.g, Config: s.cfg, RNG: s.src, Best: s.best}

	var (
		trips        int
		improvements []Improvement
	)
	for _, a := range s.agents {
		ev := a.Step(w)
		if ev.Delayed {
			break
		}
		if ev.TripCompleted {
			trips++
		}
		if ev.Improvement != nil {
			improvements = append(improvements, Improvement{
				AntID:  ev.Improvement.AntID,
				Length: ev.Improvement.Length,
				Path:   ev.Improvement.Path,
			})
		}
	}

	s.tick++
	s.trips += trips
	for i := range improvements {
		improvements[i].Tick = s.tick
		s.log.Info("new best path",
			"run", s.runID.String(),
			"tick", s.tick,
			"ant", improvements[i].AntID,
			"length", improvements[i].Length,
			"hops", len(improvements[i].Path)-1,
		)
	}

	evaporated := s.tick%uint64(s.cfg.TicksPerSecond()) == 0
	if evaporated {
		s.g.Evaporate(s.cfg.EvaporationRatePerSecond)
		s.evaporations++
		s.log.Log(context.Background(), logging.LevelTrace, "evaporated",
			"run", s.runID.String(),
			"tick", s.tick,
			"factor", s.cfg.EvaporationRatePerSecond,
			"highest", s.g.HighestPheromone(),
		)
	}

	s.last = s.snapshot(evaporated, trips, improvements)
	return s.last.Clone()
}

func (s *Simulation) snapshot(evaporated bool, trips int, improvements []Improvement) Snapshot {
	snap := Snapshot{
		RunID:            s.runID.String(),
		Tick:             s.tick,
		Evaporated:       evaporated,
		Ants:             make([]AntView, len(s.agents)),
		Edges:            make([]EdgeView, s.g.EdgeCount()),
		HighestPheromone: s.g.HighestPheromone(),
		TotalPheromone:   s.g.TotalPheromone(),
		TripsCompleted:   trips,
		Improvements:     improvements,
	}
	for i, a := range s.agents {
		x, y := a.Position()
		snap.Ants[i] = AntView{
			ID:      a.ID(),
			X:       x,
			Y:       y,
			Heading: a.Heading(),
			HasFood: a.HasFood(),
			From:    a.Last(),
			To:      a.Target(),
		}
	}
	for i, e := range s.g.Edges() {
		snap.Edges[i] = EdgeView{From: e.From, To: e.To, Pheromone: e.Pheromone}
	}
	if s.best.Found() {
		l := s.best.Length()
		snap.BestLength = &l
		snap.BestPath = s.best.Sequence()
	}
	return snap
}

// Snapshot returns the state after the most recent tick (tick 0 before the
// first one).
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last.Clone()
}

// Best returns the shortest start→end path found so far.
func (s *Simulation) Best() (length float64, path []core.NodeID, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best.Length(), s.best.Sequence(), s.best.Found()
}

// Stats summarizes a run.
type Stats struct {
	RunID        string
	Tick         uint64
	Trips        int
	Evaporations int
	BestFound    bool
	BestLength   float64
	BestPath     []core.NodeID
	BestUpdates  int
	// OptimalLength is the exact shortest start→end length (+Inf if unreachable).
	OptimalLength float64
	// Gap is BestLength/OptimalLength - 1, or NaN while either is unknown.
	Gap      float64
	Carrying int
	Waiting  int
}

// Stats returns counters and the optimality gap of the best path.
func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		RunID:         s.runID.String(),
		Tick:          s.tick,
		Trips:         s.trips,
		Evaporations:  s.evaporations,
		BestFound:     s.best.Found(),
		BestLength:    s.best.Length(),
		BestPath:      s.best.Sequence(),
		BestUpdates:   s.best.Updates(),
		OptimalLength: s.optimal,
		Gap:           math.NaN(),
	}
	if st.BestFound && !math.IsInf(s.optimal, 1) && s.optimal > 0 {
		st.Gap = st.BestLength/s.optimal - 1
	}
	for _, a := range s.agents {
		if a.HasFood() {
			st.Carrying++
		}
		if a.Delayed() {
			st.Waiting++
		}
	}
	return st
}

// Run ticks as fast as possible. ticks <= 0 runs until ctx is cancelled.
// Cancellation is checked between ticks.
func (s *Simulation) Run(ctx context.Context, ticks int) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()
	}
	return nil
}

// Drive ticks on a wall-clock cadence. interval <= 0 uses the configured
// TickIntervalMS. fn, if non-nil, sees every snapshot; returning ErrStop ends
// the run with a nil error and any other error is returned as is.
func (s *Simulation) Drive(ctx context.Context, interval time.Duration, fn func(Snapshot) error) error {
	if interval <= 0 {
		interval = time.Duration(s.Config().TickIntervalMS) * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := s.Tick()
			if fn == nil {
				continue
			}
			if err := fn(snap); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}
}
