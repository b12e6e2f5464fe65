// Package flow computes maximum flows between the nest and the food source of
// a colony graph, and the minimum cut that goes with them.
//
// With the default unit capacity the max-flow value is the number of
// edge-disjoint start→end routes (Menger's theorem) and the minimum cut is the
// set of bottleneck edges every such family of routes must cross. A world with
// a single disjoint route funnels the whole colony through its cut edges.
//
// Algorithm: Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths
//     in a residual network where each undirected edge is a pair of opposite
//     arcs sharing the edge's capacity.
//   - Time:   O(V · E²) in the worst case.
//   - Memory: O(V + E) for the residual map and BFS queue.
//
// Capacities default to 1 per edge. WithCapacity plugs in any non-negative
// per-edge function, e.g. the current pheromone level to measure how much
// trail connects nest and food.
//
// # Errors
//
//	ErrGraphNil       - the graph is nil.
//	ErrSourceNotFound - the source node is missing in the input graph.
//	ErrSinkNotFound   - the sink node is missing.
//	ErrSameEndpoints  - source equals sink.
//	EdgeError         - a capacity function returned a negative value.
//	context.Canceled / context.DeadlineExceeded - if ctx is done.
package flow
