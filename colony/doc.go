// Package colony drives an ACO run: it owns the agents, the shared random
// stream and the best-path tracker, and advances them one tick at a time.
//
// Tick order (single-threaded, fully deterministic for a given seed):
//
//  1. Agents step in ID order. With StaggerStart the first agent still holding
//     its start delay consumes it and ends agent processing for that tick, so
//     ants leave the nest one per tick.
//  2. The tick counter increments.
//  3. Every TicksPerSecond ticks the graph evaporates once.
//  4. A Snapshot is built, stored, returned and handed to observers.
//
// A Simulation is safe for concurrent use: a renderer may call Snapshot or
// Stats while another goroutine ticks. Observers run after the lock has been
// released and may call back into the Simulation.
//
// Drivers:
//
//	sim.Tick()                        // caller-paced
//	sim.Run(ctx, 1000)                // as fast as possible
//	sim.Drive(ctx, 25*time.Millisecond, fn) // wall-clock cadence
package colony
