package ant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/ant"
	"github.com/katalvlaran/acopath/core"
)

// line builds start 0 — 1 — 2 end, 10 units per edge along the x axis.
func line(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 20, Y: 0}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}},
		0, 2,
	)
	require.NoError(t, err)
	return g
}

// fork builds a nest 0 with two equally long branches: 0—1 and 0—2 (end).
func fork(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 0, Y: 10}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 0, To: 2}},
		0, 2,
	)
	require.NoError(t, err)
	return g
}

// chainWithLeaf builds 0—1—2—3 (start 0, end 3) with a dead-end leaf 4 hanging off 1.
func chainWithLeaf(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{
			{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 20, Y: 0},
			{ID: 3, X: 30, Y: 0}, {ID: 4, X: 10, Y: 10},
		},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 4}},
		0, 3,
	)
	require.NoError(t, err)
	return g
}

func edge(t *testing.T, g *core.Graph, a, b core.NodeID) int {
	t.Helper()
	i, ok := g.EdgeIndex(a, b)
	require.True(t, ok, "edge %d-%d missing", a, b)
	return i
}

// detour builds a triangle: the direct edge 0—2 is 50 units, the way round
// 0—1—2 is 30+40 = 70. Start 0, end 2.
func detour(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 0, Y: 30}, {ID: 2, X: 40, Y: 30}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
		0, 2,
	)
	require.NoError(t, err)
	return g
}

// lasso builds start 0 — 1 with a loop 1—2—3—1 and the end 4 hanging off 1:
//
//	4   3
//	│ ╱ │
//	0 ─ 1 ─ 2
func lasso(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{
			{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}, {ID: 2, X: 20, Y: 0},
			{ID: 3, X: 20, Y: 10}, {ID: 4, X: 10, Y: 10},
		},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}, {From: 1, To: 4}},
		0, 4,
	)
	require.NoError(t, err)
	return g
}

// walkUntil steps a until done reports true for an event, collecting the node of
// every arrival. Fails after limit steps.
func walkUntil(t *testing.T, a *ant.Agent, w ant.World, limit int, done func(ant.Event) bool) []core.NodeID {
	t.Helper()
	var arrivals []core.NodeID
	for i := 0; i < limit; i++ {
		ev := a.Step(w)
		if ev.Arrived {
			arrivals = append(arrivals, ev.Node)
		}
		if done(ev) {
			return arrivals
		}
	}
	t.Fatalf("ant %d did not finish within %d steps", a.ID(), limit)
	return nil
}
