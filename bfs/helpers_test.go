package bfs_test

import (
	"testing"

	"github.com/katalvlaran/acopath/core"
)

// gridGraph builds a rows×cols lattice with ids r*cols+c, start at the top-left
// corner and end at the bottom-right one.
func gridGraph(tb testing.TB, rows, cols int) *core.Graph {
	tb.Helper()
	var nodes []core.RawNode
	var edges []core.RawEdge
	id := func(r, c int) core.NodeID { return core.NodeID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nodes = append(nodes, core.RawNode{ID: id(r, c), X: float64(c), Y: float64(r)})
			if c+1 < cols {
				edges = append(edges, core.RawEdge{From: id(r, c), To: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, core.RawEdge{From: id(r, c), To: id(r+1, c)})
			}
		}
	}
	g, err := core.Build(nodes, edges, 0, id(rows-1, cols-1))
	if err != nil {
		tb.Fatalf("build grid: %v", err)
	}
	return g
}
