// Package prim_kruskal computes minimum spanning trees of a colony world.
//
// Two classic algorithms are provided over the undirected *core.Graph:
//
//   - Kruskal(g, opts...): sort all edges by weight, merge components with a
//     union-find (path compression, union by rank). O(E log E).
//   - Prim(g, root, opts...): grow one tree from root with a min-heap of
//     candidate edges. O(E log V).
//
// Edge weights come from a WeightFunc. The default, LengthWeight, yields the
// cheapest wiring that connects every node; TrailWeight divides the length by
// the current pheromone level, so the tree follows the trails the colony
// reinforced. Both algorithms break ties in edge-index order, so results are
// deterministic.
//
// Errors:
//
//   - ErrInvalidGraph : nil graph.
//   - ErrRootNotFound : Prim root is not a node of the graph.
//   - ErrDisconnected : some node cannot be reached; no spanning tree exists.
//
// A graph with a single node has the empty tree of weight 0.
package prim_kruskal
