// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Method names used to prefix constructor errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodTriangle     = "Triangle"
	MethodRandomSparse = "RandomSparse"
	MethodConnect      = "Connect"
)

// Minimum sizes.
const (
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without multi-edges.
	MinCycleNodes = 3
	// MinStarNodes is one hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a triangle ring plus its hub.
	MinWheelNodes = 4
	// MinCompleteNodes is the smallest complete graph with an edge.
	MinCompleteNodes = 2
	// MinRandomNodes is the smallest scattered layout.
	MinRandomNodes = 2
	// MinGridCells is the smallest lattice with an edge (1×2 or 2×1).
	MinGridCells = 2
)

// Layout defaults, in canvas units.
const (
	// DefaultSpacing is the distance between neighboring nodes.
	DefaultSpacing = 100.0
	// DefaultNoiseScale maps canvas units to simplex-noise space for WithJitter;
	// chosen so DefaultSpacing multiples avoid the noise lattice.
	DefaultNoiseScale = 0.0073
	// noiseOffset decorrelates the x and y noise channels.
	noiseOffset = 1000.0
)

// MinProbability and MaxProbability bound RandomSparse's p, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
