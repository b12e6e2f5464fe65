package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/acopath/core"
)

// ErrInvalidGraph is returned for a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound is returned when Prim's root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected indicates that a spanning tree covering all nodes cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// WeightFunc returns the weight of an edge.
type WeightFunc func(e core.Edge) float64

// LengthWeight weighs an edge by its Euclidean length.
func LengthWeight(e core.Edge) float64 { return e.Length }

// TrailWeight weighs an edge by length over pheromone: strongly marked edges are cheap.
func TrailWeight(e core.Edge) float64 { return e.Length / e.Pheromone }

// MSTOptions configures Compute.
//
//	Method — MethodPrim or MethodKruskal.
//	Root   — start node for Prim; ignored by Kruskal.
//	Weight — edge weight (default LengthWeight).
type MSTOptions struct {
	Method string
	Root   core.NodeID
	Weight WeightFunc
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the starting node for Prim.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// WithWeight sets the weight function. Panics on nil.
func WithWeight(fn WeightFunc) Option {
	if fn == nil {
		panic("prim_kruskal: WithWeight(nil)")
	}
	return func(opts *MSTOptions) { opts.Weight = fn }
}

// DefaultOptions returns Kruskal over edge lengths.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal, Weight: LengthWeight}
}

// Compute runs the algorithm selected by opts.Method.
// An unknown method yields ErrInvalidGraph.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, WithWeight(o.Weight))
	case MethodPrim:
		return Prim(g, o.Root, WithWeight(o.Weight))
	default:
		return nil, 0, ErrInvalidGraph
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
