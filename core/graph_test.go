package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/core"
)

// square builds the unit square 0(0,0) 1(3,0) 2(3,4) 3(0,4) with one diagonal 0—2.
func square(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}, {ID: 3, X: 0, Y: 4}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}, {From: 0, To: 2}},
		0, 2, opts...,
	)
	require.NoError(t, err)
	return g
}

func TestBuild_Topology(t *testing.T) {
	g := square(t)

	assert.Equal(t, core.NodeID(0), g.Start())
	assert.Equal(t, core.NodeID(2), g.End())
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.InDelta(t, 5.0, g.MaxEdgeLength(), 1e-12)
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(9))

	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, core.Node{ID: 2, X: 3, Y: 4}, n)

	ids := make([]core.NodeID, 0, 4)
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, ids, "load order")

	// Adjacency follows edge insertion order.
	assert.Equal(t, []core.Neighbor{{Node: 1, Edge: 0}, {Node: 3, Edge: 3}, {Node: 2, Edge: 4}}, g.Neighbors(0))
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
}

func TestBuild_EdgeLookupIsOrientationFree(t *testing.T) {
	g := square(t)

	i, ok := g.EdgeIndex(2, 0)
	require.True(t, ok)
	j, ok := g.EdgeIndex(0, 2)
	require.True(t, ok)
	assert.Equal(t, i, j)
	assert.Equal(t, core.KeyOf(0, 2), g.Edge(i).Key())
	assert.Equal(t, core.NodeID(2), g.Edge(i).Other(0))

	l, err := g.Length(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, l)

	_, err = g.Length(1, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestBuild_DuplicateEdgesCollapse(t *testing.T) {
	g, err := core.Build(
		[]core.RawNode{{ID: 0}, {ID: 1, X: 1}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 1}},
		0, 1,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, core.NodeID(0), g.Edge(0).From, "first record wins")
	assert.Len(t, g.Neighbors(1), 1)
}

func TestPathLength(t *testing.T) {
	g := square(t)

	l, err := g.PathLength([]core.NodeID{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 10.0, l)

	l, err = g.PathLength([]core.NodeID{0})
	require.NoError(t, err)
	assert.Zero(t, l)

	_, err = g.PathLength([]core.NodeID{1, 3})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestBuild_Validation(t *testing.T) {
	nodes := []core.RawNode{{ID: 0}, {ID: 1, X: 1}, {ID: 2, X: 2}}
	ok := []core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}}

	tests := []struct {
		name  string
		nodes []core.RawNode
		edges []core.RawEdge
		start core.NodeID
		end   core.NodeID
		kind  core.ValidationKind
		want  error
		edge  int
	}{
		{"unknown start", nodes, ok, 7, 2, core.UnknownStartNode, core.ErrUnknownStartNode, -1},
		{"unknown end", nodes, ok, 0, 7, core.UnknownEndNode, core.ErrUnknownEndNode, -1},
		{"start equals end", nodes, ok, 1, 1, core.StartEqualsEnd, core.ErrStartEqualsEnd, -1},
		{"no edges", nodes, nil, 0, 2, core.NoEdges, core.ErrNoEdges, -1},
		{"self loop", nodes, []core.RawEdge{{From: 0, To: 1}, {From: 2, To: 2}}, 0, 2, core.SelfLoopEdge, core.ErrSelfLoopEdge, 1},
		{"dangling", nodes, []core.RawEdge{{From: 0, To: 5}}, 0, 2, core.DanglingEdgeReference, core.ErrDanglingEdgeReference, 0},
		{"duplicate node", append(nodes, core.RawNode{ID: 1}), ok, 0, 2, core.DuplicateNode, core.ErrDuplicateNode, -1},
		{"isolated end", nodes, []core.RawEdge{{From: 0, To: 1}}, 0, 2, core.IsolatedEndpoint, core.ErrIsolatedEndpoint, -1},
		{"zero length", []core.RawNode{{ID: 0}, {ID: 1}}, []core.RawEdge{{From: 0, To: 1}}, 0, 1, core.ZeroLengthEdge, core.ErrZeroLengthEdge, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.Build(tt.nodes, tt.edges, tt.start, tt.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var ve *core.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.kind, ve.Kind)
			assert.Equal(t, tt.edge, ve.Edge)
			assert.Contains(t, err.Error(), "core:")
		})
	}
}

func TestValidationKind_String(t *testing.T) {
	assert.Equal(t, "SelfLoopEdge", core.SelfLoopEdge.String())
	assert.Equal(t, "ValidationKind(42)", core.ValidationKind(42).String())
}

func TestGraphOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { core.WithMinPheromone(0) })
	assert.Panics(t, func() { core.WithMaxPheromone(-1) })
	assert.NotPanics(t, func() { core.WithClampToMax(true) })
}
