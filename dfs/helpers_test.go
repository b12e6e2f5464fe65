package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/core"
)

// square builds 0—1—2—3—0 with the diagonal 0—2; start 0, end 2.
func square(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 0}, {ID: 2, X: 1, Y: 1}, {ID: 3, X: 0, Y: 1}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}, {From: 0, To: 2}},
		0, 2,
	)
	require.NoError(t, err)
	return g
}

// chain builds the path 0—1—…—(n-1) plus an isolated node n.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	nodes := make([]core.RawNode, 0, n+1)
	edges := make([]core.RawEdge, 0, n-1)
	for i := 0; i <= n; i++ {
		nodes = append(nodes, core.RawNode{ID: core.NodeID(i), X: float64(i)})
	}
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.RawEdge{From: core.NodeID(i), To: core.NodeID(i + 1)})
	}
	g, err := core.Build(nodes, edges, 0, core.NodeID(n-1))
	require.NoError(t, err)
	return g
}
