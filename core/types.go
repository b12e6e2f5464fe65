package core

import (
	"errors"
	"fmt"
)

// Default pheromone bounds, taken from the reference simulation.
const (
	DefaultMinPheromone = 0.001
	DefaultMaxPheromone = 1.0
)

// Sentinel errors for graph construction. ValidationError.Is matches them by kind.
var (
	ErrUnknownStartNode      = errors.New("core: start node does not exist")
	ErrUnknownEndNode        = errors.New("core: end node does not exist")
	ErrSelfLoopEdge          = errors.New("core: edge starts and ends in the same node")
	ErrDanglingEdgeReference = errors.New("core: edge references a non-existing node")
	ErrDuplicateNode         = errors.New("core: duplicate node id")
	ErrStartEqualsEnd        = errors.New("core: start node equals end node")
	ErrIsolatedEndpoint      = errors.New("core: start or end node has no incident edge")
	ErrNoEdges               = errors.New("core: graph has no edges")
	ErrZeroLengthEdge        = errors.New("core: edge has zero length")

	// ErrEdgeNotFound is returned by lookups on a pair that is not connected.
	ErrEdgeNotFound = errors.New("core: edge not found")
	// ErrNodeNotFound is returned by lookups on an unknown node id.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID identifies a node within a Graph.
type NodeID int

// ValidationKind enumerates the reasons a graph can be rejected at build time.
type ValidationKind int

const (
	UnknownStartNode ValidationKind = iota + 1
	UnknownEndNode
	SelfLoopEdge
	DanglingEdgeReference
	DuplicateNode
	StartEqualsEnd
	IsolatedEndpoint
	NoEdges
	ZeroLengthEdge
)

var kindSentinels = map[ValidationKind]error{
	UnknownStartNode:      ErrUnknownStartNode,
	UnknownEndNode:        ErrUnknownEndNode,
	SelfLoopEdge:          ErrSelfLoopEdge,
	DanglingEdgeReference: ErrDanglingEdgeReference,
	DuplicateNode:         ErrDuplicateNode,
	StartEqualsEnd:        ErrStartEqualsEnd,
	IsolatedEndpoint:      ErrIsolatedEndpoint,
	NoEdges:               ErrNoEdges,
	ZeroLengthEdge:        ErrZeroLengthEdge,
}

// String returns the kind name as used in error messages.
func (k ValidationKind) String() string {
	switch k {
	case UnknownStartNode:
		return "UnknownStartNode"
	case UnknownEndNode:
		return "UnknownEndNode"
	case SelfLoopEdge:
		return "SelfLoopEdge"
	case DanglingEdgeReference:
		return "DanglingEdgeReference"
	case DuplicateNode:
		return "DuplicateNode"
	case StartEqualsEnd:
		return "StartEqualsEnd"
	case IsolatedEndpoint:
		return "IsolatedEndpoint"
	case NoEdges:
		return "NoEdges"
	case ZeroLengthEdge:
		return "ZeroLengthEdge"
	default:
		return fmt.Sprintf("ValidationKind(%d)", int(k))
	}
}

// ValidationError reports why Build rejected its input.
//
// Node is the offending node id (start/end/duplicate/dangling endpoint) and Edge is
// the position of the offending edge in the raw edge list, or -1 when not applicable.
type ValidationError struct {
	Kind ValidationKind
	Node NodeID
	Edge int
}

// Error implements error.
func (e *ValidationError) Error() string {
	base := kindSentinels[e.Kind]
	if base == nil {
		return "core: invalid graph (" + e.Kind.String() + ")"
	}
	if e.Edge >= 0 {
		return fmt.Sprintf("%v (edge #%d, node %d)", base, e.Edge, e.Node)
	}
	return fmt.Sprintf("%v (node %d)", base, e.Node)
}

// Is makes errors.Is(err, ErrSelfLoopEdge) and friends work on a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// Unwrap exposes the sentinel for the error kind.
func (e *ValidationError) Unwrap() error {
	return kindSentinels[e.Kind]
}

func invalid(kind ValidationKind, node NodeID, edge int) error {
	return &ValidationError{Kind: kind, Node: node, Edge: edge}
}

// RawNode is a node as supplied by a loader: an id and canvas coordinates.
type RawNode struct {
	ID NodeID
	X  float64
	Y  float64
}

// RawEdge is an undirected connection as supplied by a loader.
type RawEdge struct {
	From NodeID
	To   NodeID
}

// Node is an immutable graph vertex with a 2D position.
type Node struct {
	ID NodeID
	X  float64
	Y  float64
}

// EdgeKey is the canonical unordered pair for an undirected edge (Lo ≤ Hi).
type EdgeKey struct {
	Lo NodeID
	Hi NodeID
}

// KeyOf returns the canonical key for the pair (a, b) regardless of order.
func KeyOf(a, b NodeID) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Edge is one arena record. From/To keep the orientation given at load time,
// which only matters for rendering; lookups are orientation-free.
type Edge struct {
	Index     int
	From      NodeID
	To        NodeID
	Length    float64
	Pheromone float64
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return KeyOf(e.From, e.To) }

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Neighbor is one adjacency entry: the node reached and the edge used to reach it.
type Neighbor struct {
	Node NodeID
	Edge int
}

// GraphOption configures pheromone bounds before construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	minPheromone float64
	maxPheromone float64
	clampToMax   bool
}

func defaultGraphConfig() graphConfig {
	return graphConfig{
		minPheromone: DefaultMinPheromone,
		maxPheromone: DefaultMaxPheromone,
	}
}

// WithMinPheromone sets the evaporation floor and the initial level of every edge.
// Panics if v <= 0: a zero floor makes roulette weights degenerate.
func WithMinPheromone(v float64) GraphOption {
	if v <= 0 {
		panic("core: WithMinPheromone(v<=0)")
	}
	return func(c *graphConfig) { c.minPheromone = v }
}

// WithMaxPheromone sets the declared ceiling. It only takes effect together with
// WithClampToMax(true).
func WithMaxPheromone(v float64) GraphOption {
	if v <= 0 {
		panic("core: WithMaxPheromone(v<=0)")
	}
	return func(c *graphConfig) { c.maxPheromone = v }
}

// WithClampToMax toggles ceiling enforcement on Deposit.
func WithClampToMax(clamp bool) GraphOption {
	return func(c *graphConfig) { c.clampToMax = clamp }
}
