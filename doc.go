// Package acopath is an ant colony pathfinding engine: a swarm of simulated
// ants walks an undirected 2D graph between a nest and a food source, lays
// pheromone on the routes it completes and, tick by tick, converges on a short
// path.
//
// The engine is split into small subpackages:
//
//	core/         — the world: nodes, edges, geometry and per-edge pheromone
//	rng/          — seedable randomness shared by ants and builders
//	config/       — tunable parameters, defaults, validation, YAML/JSON files
//	ant/          — one agent: movement, roulette selection, trip bookkeeping
//	bestpath/     — shortest completed route seen so far
//	colony/       — the simulation loop, snapshots, observers, run/drive
//	loader/       — JSON graph documents with schema validation
//	builder/      — generated worlds: grids, rings, wheels, random layouts
//	dijkstra/     — the true optimum, for measuring the colony's gap
//	bfs/, dfs/    — hop distances, simple routes, cycle rank
//	flow/         — edge-disjoint routes and bottleneck cuts
//	prim_kruskal/ — minimum spanning trees by length or by trail strength
//	metrics/      — Prometheus counters and gauges fed by a colony observer
//	logging/      — slog setup shared by the CLI
//	cmd/acosim/   — the command line: run, validate, generate, schema, version
//
// Quick example:
//
//	    1 ─── 2
//	    │   ╱
//	    0 ─
//
//	nest 0, food 2: ants first wander 0─1─2, then the direct edge wins.
//
//	go install github.com/katalvlaran/acopath/cmd/acosim@latest
package acopath
