package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/acopath/core"
)

// Kruskal computes the minimum spanning tree of g.
// Only the Weight option is honored.
//
// Steps:
//  1. Validate g; a single node is the trivial tree.
//  2. Stable-sort edge indices by weight (ties keep index order).
//  3. Union-find over node IDs; take each edge joining two components.
//  4. Fewer than |V|-1 edges taken → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	o := resolve(opts)
	n := g.NodeCount()
	if n <= 1 {
		return []core.Edge{}, 0, nil
	}

	edges := g.Edges()
	weight := make([]float64, len(edges))
	for i, e := range edges {
		weight[i] = o.Weight(e)
	}
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weight[order[a]] < weight[order[b]]
	})

	parent := make(map[core.NodeID]core.NodeID, n)
	rank := make(map[core.NodeID]int, n)
	for _, v := range g.Nodes() {
		parent[v.ID] = v.ID
	}

	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(u, v core.NodeID) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for _, i := range order {
		e := edges[i]
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += weight[i]
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}
