package builder

import (
	"math"

	"github.com/katalvlaran/acopath/core"
)

// PathEnds returns the two ends of Path(n) built first in a layout.
func PathEnds(n int) (start, end core.NodeID) { return 0, core.NodeID(n - 1) }

// GridCorners returns the top-left and bottom-right cells of Grid(rows, cols)
// built first in a layout.
func GridCorners(rows, cols int) (start, end core.NodeID) {
	return 0, core.NodeID(rows*cols - 1)
}

// Opposite returns node 0 and the node across the ring of Cycle(n) or Complete(n).
func Opposite(n int) (start, end core.NodeID) { return 0, core.NodeID(n / 2) }

// Farthest returns the pair of layout nodes with the largest Euclidean separation,
// lower IDs winning ties. Only nodes with at least one edge are considered.
// ok is false when fewer than two such nodes exist.
// Complexity: O(V²).
func Farthest(l *Layout) (start, end core.NodeID, ok bool) {
	linked := make(map[core.NodeID]bool, len(l.Nodes))
	for _, e := range l.Edges {
		linked[e.From], linked[e.To] = true, true
	}

	best := -1.0
	for i, a := range l.Nodes {
		if !linked[a.ID] {
			continue
		}
		for _, b := range l.Nodes[i+1:] {
			if !linked[b.ID] {
				continue
			}
			if d := math.Hypot(a.X-b.X, a.Y-b.Y); d > best {
				best, start, end = d, a.ID, b.ID
			}
		}
	}
	return start, end, best >= 0
}
