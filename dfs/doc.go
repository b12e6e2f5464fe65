// Package dfs implements depth-first search over the undirected core.Graph an
// ant colony explores, together with the two route analyses built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre- and post-order hooks, cancellation via context.Context,
//     depth limiting, neighbor filtering and forest traversal.
//   - HasCycle / CycleRank: whether the graph offers alternative routes at all.
//     A cycle-free (tree) world has exactly one start→end route, so the colony
//     converges after the first trip.
//   - Routes / CountRoutes: enumerate simple start→end paths by backtracking,
//     capped by a limit. The count sizes the search space the ants face.
//
// Complexity:
//
//   - DFS:         Time O(V+E), Memory O(V)
//   - HasCycle:    Time O(V+E), Memory O(V)
//   - Routes:      exponential in the worst case; bounded by the limit
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node id not in graph
//   - ErrBadLimit             Routes limit < 1
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Neighbors are always visited in the graph's adjacency (edge insertion) order,
// so every result is deterministic.
package dfs
