// File: graph.go
// Role: Graph construction (Build) and read-only topology queries.
// Determinism:
//   - Nodes() returns nodes in load order.
//   - Neighbors(id) returns adjacency in edge insertion order.
//   - Edges() returns the arena in insertion order (Edge.Index ascending).

package core

import (
	"fmt"
	"math"
)

// Graph is the ACO world: immutable topology plus mutable pheromone levels.
type Graph struct {
	nodes     map[NodeID]Node
	nodeOrder []NodeID

	// edges is the arena addressed by Edge.Index; keys maps a canonical pair to it.
	edges []Edge
	keys  map[EdgeKey]int
	adj   map[NodeID][]Neighbor

	start NodeID
	end   NodeID

	maxEdgeLength float64
	minPheromone  float64
	maxPheromone  float64
	clampToMax    bool
}

// Build validates raw input and constructs a Graph with every edge at the
// pheromone floor.
//
// Validation order (first failure wins, mirroring a loader that stops at the first
// problem): duplicate nodes, start/end existence, start≠end, empty edge list, then per
// edge in input order: self-loop, dangling endpoints, zero length. Finally start and
// end must each have at least one incident edge.
//
// An edge repeated with the same unordered pair is collapsed into the first record.
//
// Complexity: O(V + E) time and space.
func Build(nodes []RawNode, edges []RawEdge, start, end NodeID, opts ...GraphOption) (*Graph, error) {
	cfg := defaultGraphConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:        make(map[NodeID]Node, len(nodes)),
		nodeOrder:    make([]NodeID, 0, len(nodes)),
		edges:        make([]Edge, 0, len(edges)),
		keys:         make(map[EdgeKey]int, len(edges)),
		adj:          make(map[NodeID][]Neighbor, len(nodes)),
		start:        start,
		end:          end,
		minPheromone: cfg.minPheromone,
		maxPheromone: cfg.maxPheromone,
		clampToMax:   cfg.clampToMax,
	}

	for _, rn := range nodes {
		if _, dup := g.nodes[rn.ID]; dup {
			return nil, invalid(DuplicateNode, rn.ID, -1)
		}
		g.nodes[rn.ID] = Node{ID: rn.ID, X: rn.X, Y: rn.Y}
		g.nodeOrder = append(g.nodeOrder, rn.ID)
	}

	if _, ok := g.nodes[start]; !ok {
		return nil, invalid(UnknownStartNode, start, -1)
	}
	if _, ok := g.nodes[end]; !ok {
		return nil, invalid(UnknownEndNode, end, -1)
	}
	if start == end {
		return nil, invalid(StartEqualsEnd, start, -1)
	}
	if len(edges) == 0 {
		return nil, invalid(NoEdges, start, -1)
	}

	for i, re := range edges {
		if re.From == re.To {
			return nil, invalid(SelfLoopEdge, re.From, i)
		}
		from, ok := g.nodes[re.From]
		if !ok {
			return nil, invalid(DanglingEdgeReference, re.From, i)
		}
		to, ok := g.nodes[re.To]
		if !ok {
			return nil, invalid(DanglingEdgeReference, re.To, i)
		}

		key := KeyOf(re.From, re.To)
		if _, seen := g.keys[key]; seen {
			continue
		}

		length := math.Hypot(from.X-to.X, from.Y-to.Y)
		if length <= 0 {
			return nil, invalid(ZeroLengthEdge, re.From, i)
		}

		idx := len(g.edges)
		g.edges = append(g.edges, Edge{
			Index:     idx,
			From:      re.From,
			To:        re.To,
			Length:    length,
			Pheromone: g.minPheromone,
		})
		g.keys[key] = idx
		g.adj[re.From] = append(g.adj[re.From], Neighbor{Node: re.To, Edge: idx})
		g.adj[re.To] = append(g.adj[re.To], Neighbor{Node: re.From, Edge: idx})

		if length > g.maxEdgeLength {
			g.maxEdgeLength = length
		}
	}

	if len(g.adj[start]) == 0 {
		return nil, invalid(IsolatedEndpoint, start, -1)
	}
	if len(g.adj[end]) == 0 {
		return nil, invalid(IsolatedEndpoint, end, -1)
	}

	return g, nil
}

// Start returns the nest node id.
func (g *Graph) Start() NodeID { return g.start }

// End returns the food node id.
func (g *Graph) End() NodeID { return g.end }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns |E| (undirected edges, each counted once).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// MaxEdgeLength returns the longest edge length (C in the C/P increment strategy).
func (g *Graph) MaxEdgeLength() float64 { return g.maxEdgeLength }

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in load order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}
	return out
}

// Neighbors returns the adjacency of id in insertion order. The returned slice is
// shared and must not be modified.
func (g *Graph) Neighbors(id NodeID) []Neighbor {
	return g.adj[id]
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id NodeID) int { return len(g.adj[id]) }

// Edge returns a copy of the arena record at index i.
// Panics if i is out of range, like a slice access.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the arena.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeIndex returns the arena index of the edge joining a and b.
func (g *Graph) EdgeIndex(a, b NodeID) (int, bool) {
	i, ok := g.keys[KeyOf(a, b)]
	return i, ok
}

// Length returns the length of the edge joining a and b.
func (g *Graph) Length(a, b NodeID) (float64, error) {
	i, ok := g.EdgeIndex(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, a, b)
	}
	return g.edges[i].Length, nil
}

// PathLength sums edge lengths along seq. A sequence of fewer than two nodes has
// length 0.
func (g *Graph) PathLength(seq []NodeID) (float64, error) {
	var total float64
	for i := 1; i < len(seq); i++ {
		l, err := g.Length(seq[i-1], seq[i])
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total, nil
}
