package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/dfs"
)

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(square(t), 42)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Square(t *testing.T) {
	res, err := dfs.DFS(square(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{3, 2, 1, 0}, res.Order, "post-order")
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 2: 2, 3: 3}, res.Depth)
	assert.Equal(t, map[core.NodeID]core.NodeID{1: 0, 2: 1, 3: 2}, res.Parent)
	assert.Len(t, res.Visited, 4)
}

func TestDFS_HooksOrder(t *testing.T) {
	var pre, post []core.NodeID
	_, err := dfs.DFS(square(t), 0,
		dfs.WithOnVisit(func(id core.NodeID) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id core.NodeID) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, pre)
	assert.Equal(t, []core.NodeID{3, 2, 1, 0}, post)
}

func TestDFS_HookErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	res, err := dfs.DFS(square(t), 0, dfs.WithOnVisit(func(id core.NodeID) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	_, err = dfs.DFS(square(t), 0, dfs.WithOnExit(func(core.NodeID) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(square(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	// 2 is out of reach through 1 and 3 but is found again one hop from 0.
	assert.Equal(t, []core.NodeID{1, 3, 2, 0}, res.Order)
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 2: 1, 3: 1}, res.Depth)
	assert.Equal(t, core.NodeID(0), res.Parent[2])
}

func TestDFS_Filter(t *testing.T) {
	res, err := dfs.DFS(square(t), 0, dfs.WithFilterNeighbor(func(id core.NodeID) bool { return id != 1 }))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3, 0}, res.Order)
	assert.False(t, res.Visited[1])
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := chain(t, 3)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Visited[3])

	res, err = dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.True(t, res.Visited[3])
	assert.Equal(t, []core.NodeID{2, 1, 0, 3}, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(square(t), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
