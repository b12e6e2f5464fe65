// Cycle detection for the undirected colony graph. Build rejects self-loops and
// collapses parallel edges, so every cycle has at least three nodes.

package dfs

import "github.com/katalvlaran/acopath/core"

// HasCycle reports whether g contains any cycle, i.e. whether some pair of
// nodes is joined by more than one simple route.
// Returns false for a nil graph.
//
// Complexity: O(V + E).
func HasCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}
	state := make(map[core.NodeID]int, g.NodeCount())
	for _, v := range g.Nodes() {
		if state[v.ID] == White && visitCycle(g, v.ID, -1, state) {
			return true
		}
	}
	return false
}

// visitCycle marks id Gray, and reports a back edge to any Gray node other
// than the tree edge it arrived by.
func visitCycle(g *core.Graph, id core.NodeID, viaEdge int, state map[core.NodeID]int) bool {
	state[id] = Gray
	for _, nb := range g.Neighbors(id) {
		if nb.Edge == viaEdge {
			continue
		}
		switch state[nb.Node] {
		case Gray:
			return true
		case White:
			if visitCycle(g, nb.Node, nb.Edge, state) {
				return true
			}
		}
	}
	state[id] = Black
	return false
}

// CycleRank returns the number of independent cycles of g,
// E − V + C where C is the number of connected components (isolated nodes
// included). Zero means g is a forest.
//
// Complexity: O(V + E).
func CycleRank(g *core.Graph) int {
	if g == nil {
		return 0
	}
	res, _ := DFS(g, g.Start(), WithFullTraversal())
	components := 0
	for _, v := range g.Nodes() {
		if _, hasParent := res.Parent[v.ID]; !hasParent {
			components++
		}
	}
	return g.EdgeCount() - g.NodeCount() + components
}
