package ant

import "github.com/katalvlaran/acopath/config"

// Increment returns the per-edge pheromone deposit for a trip of length p, given the
// longest edge c and the global best length pb.
//
// p > 0 is a precondition guaranteed by positive edge lengths; a non-positive p makes
// the cost-based strategies deposit nothing. Unknown strategies fall back to Constant.
func Increment(strategy config.IncrementStrategy, p, c, pb float64) float64 {
	if strategy != config.Constant && p <= 0 {
		return 0
	}
	switch strategy {
	case config.InverseCost:
		return 1 / p
	case config.MaxEdgeNormalized:
		return c / p
	case config.BestPathNormalized:
		return pb / p
	default:
		return 1
	}
}
