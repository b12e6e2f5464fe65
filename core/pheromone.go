// File: pheromone.go
// Role: the mutable half of the Graph: evaporation, deposits and pheromone queries.

package core

import "math"

// MinPheromone returns the evaporation floor.
func (g *Graph) MinPheromone() float64 { return g.minPheromone }

// MaxPheromone returns the declared ceiling.
func (g *Graph) MaxPheromone() float64 { return g.maxPheromone }

// ClampToMax reports whether Deposit enforces MaxPheromone.
func (g *Graph) ClampToMax() bool { return g.clampToMax }

// Pheromone returns the current level of edge i.
func (g *Graph) Pheromone(i int) float64 { return g.edges[i].Pheromone }

// Evaporate multiplies every level by factor and lifts the result to the floor:
//
//	p = max(p*factor, MinPheromone)
//
// The cadence (once per simulated second) is owned by the caller.
// Complexity: O(E).
func (g *Graph) Evaporate(factor float64) {
	for i := range g.edges {
		g.edges[i].Pheromone = math.Max(g.edges[i].Pheromone*factor, g.minPheromone)
	}
}

// Deposit adds amount to edge i. With ClampToMax the level is capped at
// MaxPheromone; the floor is always re-asserted.
func (g *Graph) Deposit(i int, amount float64) {
	p := g.edges[i].Pheromone + amount
	if g.clampToMax && p > g.maxPheromone {
		p = g.maxPheromone
	}
	if p < g.minPheromone {
		p = g.minPheromone
	}
	g.edges[i].Pheromone = p
}

// HighestPheromone returns the maximum level over all edges.
func (g *Graph) HighestPheromone() float64 {
	highest := g.minPheromone
	for i := range g.edges {
		if g.edges[i].Pheromone > highest {
			highest = g.edges[i].Pheromone
		}
	}
	return highest
}

// TotalPheromone returns the sum of all edge levels.
func (g *Graph) TotalPheromone() float64 {
	var total float64
	for i := range g.edges {
		total += g.edges[i].Pheromone
	}
	return total
}

// ResetPheromone puts every edge back on the floor.
func (g *Graph) ResetPheromone() {
	for i := range g.edges {
		g.edges[i].Pheromone = g.minPheromone
	}
}

// SetPheromoneBounds replaces the floor, ceiling and clamp flag of a running graph.
// Levels that violate the new bounds are brought inside them immediately.
// Non-positive bounds are ignored.
func (g *Graph) SetPheromoneBounds(minLevel, maxLevel float64, clamp bool) {
	if minLevel > 0 {
		g.minPheromone = minLevel
	}
	if maxLevel > 0 {
		g.maxPheromone = maxLevel
	}
	g.clampToMax = clamp
	for i := range g.edges {
		p := g.edges[i].Pheromone
		if g.clampToMax && p > g.maxPheromone {
			p = g.maxPheromone
		}
		if p < g.minPheromone {
			p = g.minPheromone
		}
		g.edges[i].Pheromone = p
	}
}
