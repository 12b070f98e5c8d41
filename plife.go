// Package plife simulates emergent "particle life": many point particles,
// each with a discrete type, interacting through pairwise forces whose sign
// and magnitude depend only on the pair of types and the distance between
// the particles.
//
// A simulation is assembled once from a decoded configuration (see
// Initialize) and then advanced one tick at a time with Step. The particle
// state is double-buffered: every tick reads only the previous snapshot and
// writes only the next one, so hosts always observe complete snapshots.
package plife

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a single point in the simulation.
type Particle struct {
	Position r2.Vec
	Velocity r2.Vec
	Type     int
}
