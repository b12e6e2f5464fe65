package dfs

import (
	"slices"

	"github.com/katalvlaran/acopath/core"
)

// Routes enumerates simple paths from → to in depth-first order, following
// adjacency order, and stops after limit paths. The second result reports
// whether the enumeration was cut short by the limit.
//
// Complexity: exponential in general; every reported path costs O(V).
func Routes(g *core.Graph, from, to core.NodeID, limit int) ([][]core.NodeID, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, false, ErrStartVertexNotFound
	}
	if limit < 1 {
		return nil, false, ErrBadLimit
	}

	r := &router{g: g, to: to, limit: limit, onPath: make(map[core.NodeID]bool)}
	r.walk(from)
	return r.routes, r.truncated, nil
}

// CountRoutes returns the number of simple start→end routes of g, capped at
// limit. The second result is true when the cap was hit.
func CountRoutes(g *core.Graph, limit int) (int, bool, error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	routes, truncated, err := Routes(g, g.Start(), g.End(), limit)
	return len(routes), truncated, err
}

type router struct {
	g         *core.Graph
	to        core.NodeID
	limit     int
	path      []core.NodeID
	onPath    map[core.NodeID]bool
	routes    [][]core.NodeID
	truncated bool
}

// walk extends the current path with id and backtracks afterwards.
// It returns false once the limit stops the enumeration.
func (r *router) walk(id core.NodeID) bool {
	r.path = append(r.path, id)
	r.onPath[id] = true
	defer func() {
		r.path = r.path[:len(r.path)-1]
		r.onPath[id] = false
	}()

	if id == r.to {
		if len(r.routes) == r.limit {
			r.truncated = true
			return false
		}
		r.routes = append(r.routes, slices.Clone(r.path))
		return true
	}

	for _, nb := range r.g.Neighbors(id) {
		if r.onPath[nb.Node] {
			continue
		}
		if !r.walk(nb.Node) {
			return false
		}
	}
	return true
}
