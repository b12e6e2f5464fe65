// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hop count from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Why
//
//   - The graph loader uses Reachable to reject worlds whose food cannot be
//     reached from the nest; core.Build does not check connectivity.
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency in edge insertion order and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, g.Start(), bfs.WithMaxDepth(3))
//	ok, err := bfs.Reachable(g, g.Start(), g.End())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for nodes outside the BFS tree.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
