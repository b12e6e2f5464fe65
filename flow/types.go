package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source node is missing.
	ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)

	// ErrSinkNotFound is returned when the specified sink node is missing.
	ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)

	// ErrSameEndpoints is returned when source equals sink.
	ErrSameEndpoints = errors.New("flow: source equals sink")
)

var (
	errSourceNotFound = errors.New("source vertex not found")
	errSinkNotFound   = errors.New("sink vertex not found")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To core.NodeID
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d—%d: %g", e.From, e.To, e.Cap)
}

// CapacityFunc returns the capacity of an edge.
type CapacityFunc func(e core.Edge) float64

// UnitCapacity gives every edge capacity 1.
func UnitCapacity(core.Edge) float64 { return 1 }

// PheromoneCapacity uses the edge's current pheromone level.
func PheromoneCapacity(e core.Edge) float64 { return e.Pheromone }

// FlowOptions configures EdmondsKarp.
//   - Epsilon: treat residual capacities ≤ Epsilon as zero (default 1e-9).
//   - Capacity: per-edge capacity (default UnitCapacity).
//   - OnAugment: if non-nil, observes each augmenting path and the flow pushed.
type FlowOptions struct {
	Epsilon   float64
	Capacity  CapacityFunc
	OnAugment func(path []core.NodeID, pushed float64)
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// DefaultOptions returns unit capacities and Epsilon 1e-9.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9, Capacity: UnitCapacity}
}

// WithCapacity sets the capacity function. Panics on nil.
func WithCapacity(fn CapacityFunc) Option {
	if fn == nil {
		panic("flow: WithCapacity(nil)")
	}
	return func(o *FlowOptions) { o.Capacity = fn }
}

// WithEpsilon sets the zero threshold. Panics on eps < 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("flow: WithEpsilon(eps<0)")
	}
	return func(o *FlowOptions) { o.Epsilon = eps }
}

// WithOnAugment installs an augmentation observer.
func WithOnAugment(fn func(path []core.NodeID, pushed float64)) Option {
	return func(o *FlowOptions) { o.OnAugment = fn }
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// Value is the maximum flow from Source to Sink.
	Value float64
	// Source and Sink echo the endpoints.
	Source, Sink core.NodeID
	// Augmentations counts the augmenting paths used.
	Augmentations int
	// SourceSide lists the nodes still reachable from Source in the final
	// residual network, in load order.
	SourceSide []core.NodeID
	// Cut lists the indices of saturated edges crossing from SourceSide to the
	// rest of the graph, ascending. Their capacities sum to Value.
	Cut []int
}
