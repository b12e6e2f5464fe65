// Package ant implements the colony's agent: a two-state machine that walks a
// core.Graph from the nest to the food and back, depositing pheromone on the way home.
//
// States:
//
//	Seeking   - outbound, no food. On every node the ant appends the node to its trail
//	            (collapsing any loop it just closed) and picks the next node by
//	            roulette-wheel selection.
//	Returning - inbound, carrying food. The ant pops its trail (LIFO) and deposits the
//	            trip's pheromone increment on every edge it walks back over.
//
// Transitions happen only when the ant stands exactly on its target node; otherwise a
// Step just moves it along the current edge. The pheromone increment is computed once
// per round trip, at the food node, from the trail length P, the longest edge C and
// the global best length Pb (see config.IncrementStrategy).
//
// Agents are created once per simulation and reused for every trip.
package ant
