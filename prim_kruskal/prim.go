package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/acopath/core"
)

// Prim computes the minimum spanning tree of g by growing it from root.
// Only the Weight option is honored.
//
// Steps:
//  1. Validate g and root; a single node is the trivial tree.
//  2. Mark root visited and push its incident edges onto a min-heap.
//  3. Pop the lightest edge; if its far end is new, take it and push that
//     node's edges to unvisited neighbors.
//  4. Fewer than |V|-1 edges taken → ErrDisconnected.
//
// Complexity: O(E log V). Memory: O(V + E).
func Prim(g *core.Graph, root core.NodeID, opts ...Option) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	if !g.HasNode(root) {
		return nil, 0, ErrRootNotFound
	}
	o := resolve(opts)
	n := g.NodeCount()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make(map[core.NodeID]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}

	push := func(u core.NodeID) {
		visited[u] = true
		for _, nb := range g.Neighbors(u) {
			if !visited[nb.Node] {
				heap.Push(pq, candidate{edge: nb.Edge, to: nb.Node, w: o.Weight(g.Edge(nb.Edge))})
			}
		}
	}

	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, g.Edge(c.edge))
		total += c.w
		push(c.to)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}

// candidate is a heap entry: an edge index leading to node to.
type candidate struct {
	edge int
	to   core.NodeID
	w    float64
}

// edgePQ is a min-heap of candidates ordered by weight, then edge index.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].w != pq[j].w {
		return pq[i].w < pq[j].w
	}
	return pq[i].edge < pq[j].edge
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]
	return c
}
