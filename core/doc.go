// Package core defines the pheromone-weighted graph that an ant colony explores.
//
// A Graph G = (V, E) is built once from raw nodes and undirected edges and is then
// topologically immutable: nodes, adjacency and edge lengths never change during a run.
// The only mutable state is the per-edge pheromone level, raised by ant deposits and
// lowered by evaporation.
//
// Storage layout:
//
//   - Edges live in an arena ([]Edge) and are addressed by their index.
//   - An EdgeKey{Lo, Hi} is the canonical unordered pair; (a,b) and (b,a) resolve to
//     the same arena slot, so an undirected edge is stored exactly once.
//   - Adjacency is an index node → []Neighbor{Node, Edge} kept in edge insertion
//     order, which is the stable order used by roulette-wheel selection.
//
// Invariants:
//
//   - Edge.Length > 0 (self-loops are rejected, coincident nodes are rejected).
//   - Edge.Pheromone ≥ MinPheromone() at all times; Evaporate and Deposit both
//     re-assert the floor.
//   - The ceiling MaxPheromone() is only enforced when WithClampToMax(true) is set.
//
// Errors:
//
//	ErrUnknownStartNode      - start id is not among the nodes.
//	ErrUnknownEndNode        - end id is not among the nodes.
//	ErrSelfLoopEdge          - an edge has from == to.
//	ErrDanglingEdgeReference - an edge endpoint is not among the nodes.
//	ErrDuplicateNode         - two nodes share an id.
//	ErrStartEqualsEnd        - start and end are the same node.
//	ErrIsolatedEndpoint      - start or end has no incident edge.
//	ErrNoEdges               - the edge list is empty.
//	ErrZeroLengthEdge        - both endpoints sit on the same coordinates.
//
// Concurrency: a Graph is not safe for concurrent mutation. The colony package
// serializes every access behind its own lock.
package core
