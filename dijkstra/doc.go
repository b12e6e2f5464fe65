// Package dijkstra provides Dijkstra's shortest-path algorithm over the ACO world
// graph (core.Graph), using the Euclidean edge lengths as weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-length path from a single source node to all
//     reachable nodes in O((V + E) log V).
//   - ShortestPath is the point-to-point convenience wrapper returning the length
//     and node sequence.
//   - Pheromone levels are ignored: this is the exact optimum the colony is meant
//     to approximate, used for optimality-gap reporting and in tests.
//
// Options:
//
//   - Source(id): required starting node.
//   - WithReturnPath(): also return the predecessor map.
//   - WithMaxDistance(x): stop exploring beyond distance x.
//   - WithInfEdgeThreshold(t): treat edges with Length ≥ t as walls.
//
// Example:
//
//	length, path, err := dijkstra.ShortestPath(g, g.Start(), g.End())
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // end unreachable
//	}
package dijkstra
