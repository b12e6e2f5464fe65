package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/acopath/bfs"
	"github.com/katalvlaran/acopath/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := gridGraph(t, 2, 2)
	if _, err := bfs.BFS(g, 99); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_GridDepths checks that depth equals Manhattan distance on a lattice.
func TestBFS_GridDepths(t *testing.T) {
	g := gridGraph(t, 3, 4)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 12 {
		t.Fatalf("visited %d nodes; want 12", len(res.Order))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			id := core.NodeID(r*4 + c)
			if d := res.Depth[id]; d != r+c {
				t.Errorf("Depth[%d] = %d; want %d", id, d, r+c)
			}
		}
	}
	if _, ok := res.Parent[0]; ok {
		t.Errorf("start must have no parent")
	}
}

// TestBFS_PathTo reconstructs a hop-shortest path.
func TestBFS_PathTo(t *testing.T) {
	g := gridGraph(t, 1, 5)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []core.NodeID{0, 1, 2, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if _, err := res.PathTo(42); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("want ErrNotReached, got %v", err)
	}
}

// TestBFS_MaxDepth stops exploration after the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := gridGraph(t, 1, 6)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterNeighbor cuts the lattice in two.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := gridGraph(t, 1, 4)
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nb core.NodeID) bool {
		return !(curr == 1 && nb == 2)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Depth[3]; ok {
		t.Errorf("node 3 must be cut off")
	}
}

// TestBFS_HookOrder checks enqueue → dequeue → visit sequencing.
func TestBFS_HookOrder(t *testing.T) {
	g := gridGraph(t, 1, 2)
	var log []string
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { log = append(log, "enq", string(rune('0'+id))) }),
		bfs.WithOnDequeue(func(id core.NodeID, _ int) { log = append(log, "deq", string(rune('0'+id))) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			log = append(log, "vis", string(rune('0'+id)))
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"enq", "0", "deq", "0", "vis", "0", "enq", "1", "deq", "1", "vis", "1"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hooks = %v; want %v", log, want)
	}
}

// TestBFS_VisitErrorAborts propagates hook errors.
func TestBFS_VisitErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(gridGraph(t, 2, 2), 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestBFS_ContextCancel stops before visiting anything.
func TestBFS_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(gridGraph(t, 3, 3), 0, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestReachable(t *testing.T) {
	g := gridGraph(t, 3, 3)
	ok, err := bfs.Reachable(g, g.Start(), g.End())
	if err != nil || !ok {
		t.Fatalf("corner to corner: got (%v, %v)", ok, err)
	}

	split, err := core.Build(
		[]core.RawNode{{ID: 0}, {ID: 1, X: 1}, {ID: 2, X: 5}, {ID: 3, X: 6}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 2, To: 3}},
		0, 3,
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ok, err := bfs.Reachable(split, 0, 3); err != nil || ok {
		t.Errorf("disconnected: got (%v, %v); want (false, nil)", ok, err)
	}
	if _, err := bfs.Reachable(split, 77, 3); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("want ErrStartVertexNotFound, got %v", err)
	}
	if ok, _ := bfs.Reachable(split, 0, 0); !ok {
		t.Errorf("a node reaches itself")
	}
}
