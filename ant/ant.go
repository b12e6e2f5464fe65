package ant

import (
	"math"
	"slices"

	"github.com/katalvlaran/acopath/bestpath"
	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/rng"
)

// ArrivalEpsilon is the remaining distance below which an ant counts as standing on
// its target node.
const ArrivalEpsilon = 1e-9

// State is the agent's food state.
type State int

const (
	// Seeking ants walk outbound looking for food.
	Seeking State = iota
	// Returning ants carry food back to the nest.
	Returning
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Returning {
		return "returning"
	}
	return "seeking"
}

// World bundles what an agent reads and mutates during one Step. Graph and Best
// are shared by every agent of a simulation; RNG is the single shared stream.
type World struct {
	Graph  *core.Graph
	Config config.SimulationConfig
	RNG    rng.Source
	Best   *bestpath.Tracker
}

// Improvement describes a new global best path found by an agent.
type Improvement struct {
	AntID  int
	Length float64
	Path   []core.NodeID
}

// Event reports what happened during one Step.
type Event struct {
	// Delayed is set when the step was swallowed by the start delay.
	Delayed bool
	// Arrived is set when the ant stood on its target and made a transition.
	Arrived bool
	// Node is the node the ant transitioned on (valid when Arrived).
	Node core.NodeID
	// DepositEdge is the edge that received pheromone, or -1.
	DepositEdge int
	// Deposit is the amount added to DepositEdge.
	Deposit float64
	// TripCompleted is set on the first step after dropping food at the nest.
	TripCompleted bool
	// Improvement is non-nil when this ant just set a new global best.
	Improvement *Improvement
}

// Agent is one ant.
type Agent struct {
	id int

	x, y    float64
	heading float64

	target   core.NodeID
	last     core.NodeID
	lastEdge int

	state State
	path  []core.NodeID

	recentlyAcquired  bool
	recentlyDeposited bool
	increment         float64

	startDelay bool
	trips      int
	tripLength float64
}

// New places a Seeking agent on the start node of g. With startDelay the agent's
// first Step does nothing but clear the delay.
func New(id int, g *core.Graph, startDelay bool) *Agent {
	start, _ := g.Node(g.Start())
	return &Agent{
		id:         id,
		x:          start.X,
		y:          start.Y,
		target:     start.ID,
		last:       start.ID,
		lastEdge:   -1,
		state:      Seeking,
		startDelay: startDelay,
	}
}

// ID returns the agent id.
func (a *Agent) ID() int { return a.id }

// Position returns the current canvas position.
func (a *Agent) Position() (x, y float64) { return a.x, a.y }

// Heading returns the direction of travel in radians, measured in the graph's
// coordinate system (atan2 of the edge vector).
func (a *Agent) Heading() float64 { return a.heading }

// State returns the food state.
func (a *Agent) State() State { return a.state }

// HasFood reports whether the agent is Returning.
func (a *Agent) HasFood() bool { return a.state == Returning }

// Target returns the node the agent is walking towards.
func (a *Agent) Target() core.NodeID { return a.target }

// Last returns the node the agent most recently left.
func (a *Agent) Last() core.NodeID { return a.last }

// LastEdge returns the edge currently being walked, or -1 before the first move.
func (a *Agent) LastEdge() int { return a.lastEdge }

// Path returns a copy of the trail.
func (a *Agent) Path() []core.NodeID { return slices.Clone(a.path) }

// Increment returns the deposit amount of the current round trip.
func (a *Agent) Increment() float64 { return a.increment }

// Trips returns the number of completed round trips.
func (a *Agent) Trips() int { return a.trips }

// TripLength returns the length of the most recent outbound trip (0 before the
// first one).
func (a *Agent) TripLength() float64 { return a.tripLength }

// Delayed reports whether the start delay is still pending.
func (a *Agent) Delayed() bool { return a.startDelay }

// Step advances the agent by one tick: either a geometric move towards its target or,
// when it already stands on the target, one state-machine transition.
func (a *Agent) Step(w World) Event {
	ev := Event{DepositEdge: -1}

	if a.startDelay {
		a.startDelay = false
		ev.Delayed = true
		return ev
	}

	tn, _ := w.Graph.Node(a.target)
	if math.Hypot(tn.X-a.x, tn.Y-a.y) > ArrivalEpsilon {
		a.move(tn, w.Config.AntSpeed)
		return ev
	}

	a.transition(w, &ev)
	return ev
}

// move interpolates towards tn so that the ant lands exactly on the node after
// ceil(remaining/speed) steps.
func (a *Agent) move(tn core.Node, speed float64) {
	if speed <= 0 {
		return
	}
	dx, dy := tn.X-a.x, tn.Y-a.y
	steps := math.Ceil(math.Hypot(dx, dy) / speed)
	if steps <= 1 {
		a.x, a.y = tn.X, tn.Y
		return
	}
	a.x += dx / steps
	a.y += dy / steps
}

func (a *Agent) transition(w World, ev *Event) {
	g := w.Graph
	arrived := a.target
	ev.Arrived = true
	ev.Node = arrived

	switch {
	case arrived == g.End() && a.state == Seeking:
		a.state = Returning
		a.recentlyAcquired = true
	case arrived == g.Start() && a.state == Returning:
		a.state = Seeking
		a.recentlyDeposited = true
	}

	var next core.NodeID
	if a.state == Returning && len(a.path) > 0 {
		if a.recentlyAcquired {
			a.finishOutbound(w, ev)
			a.recentlyAcquired = false
		} else {
			a.deposit(g, ev)
		}
		next = a.path[len(a.path)-1]
		a.path = a.path[:len(a.path)-1]
	} else {
		a.path = AppendTrimmed(a.path, arrived)
		if a.recentlyDeposited {
			a.deposit(g, ev)
			a.recentlyDeposited = false
			a.trips++
			ev.TripCompleted = true
		}
		next = SelectNext(g, arrived, a.last, w.Config.Alpha, w.Config.Beta, w.RNG)
	}

	if idx, ok := g.EdgeIndex(arrived, next); ok {
		a.lastEdge = idx
	} else {
		a.lastEdge = -1
	}
	a.last = arrived
	a.target = next

	from, _ := g.Node(arrived)
	to, _ := g.Node(next)
	if from != to {
		a.heading = math.Atan2(to.Y-from.Y, to.X-from.X)
	}
}

// finishOutbound runs once at the food node: it measures the trail, offers it to the
// global tracker and fixes the increment for the whole return trip. The tracker is
// updated first so Pb already includes this trip.
func (a *Agent) finishOutbound(w World, ev *Event) {
	g := w.Graph
	trip := append(slices.Clone(a.path), g.End())
	p, err := g.PathLength(trip)
	if err != nil {
		// The trail only ever follows edges, so this cannot happen on a valid graph.
		a.increment = 0
		return
	}
	a.tripLength = p

	pb := p
	if w.Best != nil {
		if w.Best.Record(trip, p) {
			ev.Improvement = &Improvement{AntID: a.id, Length: p, Path: trip}
		}
		pb = w.Best.Length()
	}
	a.increment = Increment(w.Config.IncrementStrategy, p, g.MaxEdgeLength(), pb)
}

func (a *Agent) deposit(g *core.Graph, ev *Event) {
	if a.lastEdge < 0 {
		return
	}
	g.Deposit(a.lastEdge, a.increment)
	ev.DepositEdge = a.lastEdge
	ev.Deposit = a.increment
}
