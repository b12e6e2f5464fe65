package flow

import (
	"context"
	"math"
	"slices"

	"github.com/katalvlaran/acopath/core"
)

// residual holds the remaining capacity of each arc u→v.
type residual map[core.NodeID]map[core.NodeID]float64

// EdmondsKarp computes the maximum flow from source→sink over the undirected
// graph g using the Edmonds–Karp algorithm (BFS for shortest augmenting paths),
// and the minimum cut separating them.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts ...Option) (*Result, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2) Build the residual network: both arcs of an edge start at its capacity
	res := make(residual, g.NodeCount())
	for _, e := range g.Edges() {
		c := o.Capacity(e)
		if c < -o.Epsilon || math.IsNaN(c) {
			return nil, EdgeError{From: e.From, To: e.To, Cap: c}
		}
		if c <= o.Epsilon {
			continue
		}
		res.add(e.From, e.To, c)
		res.add(e.To, e.From, c)
	}

	// 3) Main loop: find BFS augmenting paths until none remain
	out := &Result{Source: source, Sink: sink}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, bottle := bfsAugmentingPath(g, res, source, sink, o.Epsilon)
		if len(path) == 0 {
			break
		}
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			res[u][v] -= bottle
			res.add(v, u, bottle)
		}
		out.Value += bottle
		out.Augmentations++
		if o.OnAugment != nil {
			o.OnAugment(path, bottle)
		}
	}

	// 4) Min cut: everything reachable in the residual network vs the rest
	side := reachable(g, res, source, o.Epsilon)
	for _, n := range g.Nodes() {
		if side[n.ID] {
			out.SourceSide = append(out.SourceSide, n.ID)
		}
	}
	for _, e := range g.Edges() {
		if side[e.From] != side[e.To] && o.Capacity(e) > o.Epsilon {
			out.Cut = append(out.Cut, e.Index)
		}
	}

	return out, nil
}

// DisjointRoutes returns the number of edge-disjoint start→end routes of g.
func DisjointRoutes(ctx context.Context, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	r, err := EdmondsKarp(ctx, g, g.Start(), g.End())
	if err != nil {
		return 0, err
	}
	return int(math.Round(r.Value)), nil
}

func (r residual) add(u, v core.NodeID, c float64) {
	m := r[u]
	if m == nil {
		m = make(map[core.NodeID]float64)
		r[u] = m
	}
	m[v] += c
}

// bfsAugmentingPath finds the shortest (fewest-edges) path from source→sink
// with residual capacity > eps, visiting neighbors in adjacency order, and
// returns it with its bottleneck. Returns nil if no path exists.
func bfsAugmentingPath(g *core.Graph, res residual, source, sink core.NodeID, eps float64) ([]core.NodeID, float64) {
	parent := map[core.NodeID]core.NodeID{}
	bottle := map[core.NodeID]float64{source: math.Inf(1)}
	visited := map[core.NodeID]bool{source: true}

	queue := []core.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(u) {
			v := nb.Node
			if visited[v] || res[u][v] <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], res[u][v])
			if v == sink {
				path := []core.NodeID{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				slices.Reverse(path)
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}

// reachable marks the nodes reachable from source over arcs with capacity > eps.
func reachable(g *core.Graph, res residual, source core.NodeID, eps float64) map[core.NodeID]bool {
	seen := map[core.NodeID]bool{source: true}
	queue := []core.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(u) {
			if !seen[nb.Node] && res[u][nb.Node] > eps {
				seen[nb.Node] = true
				queue = append(queue, nb.Node)
			}
		}
	}
	return seen
}
