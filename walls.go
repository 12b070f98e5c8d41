package plife

import "gonum.org/v1/gonum/spatial/r2"

// WallKind selects the boundary behavior of the world.
type WallKind int

const (
	WallsNone WallKind = iota
	WallsWrapping
	WallsSquare
)

// Walls is the boundary policy for a run: no walls, a periodic torus, or a
// reflective box. Dist is the half-extent of the world on each axis and is
// meaningless when Kind is WallsNone.
type Walls struct {
	Kind WallKind
	Dist float64
}

// NoWalls returns the unbounded policy.
func NoWalls() Walls { return Walls{Kind: WallsNone} }

// WrappingWalls returns a periodic world spanning [-dist, dist) per axis.
func WrappingWalls(dist float64) Walls { return Walls{Kind: WallsWrapping, Dist: dist} }

// SquareWalls returns a reflective box spanning [-dist, dist] per axis.
func SquareWalls(dist float64) Walls { return Walls{Kind: WallsSquare, Dist: dist} }

// AdjustDelta maps a displacement onto the shortest path between two points.
// Only wrapping walls change anything: on a torus a displacement longer than
// Dist on an axis is shorter the other way around.
func (w Walls) AdjustDelta(delta r2.Vec) r2.Vec {
	if w.Kind != WallsWrapping {
		return delta
	}
	delta.X = wrapDelta(delta.X, w.Dist)
	delta.Y = wrapDelta(delta.Y, w.Dist)
	return delta
}

func wrapDelta(d, dist float64) float64 {
	if d > dist {
		return d - 2*dist
	}
	if d < -dist {
		return d + 2*dist
	}
	return d
}

// ApplyPostStep corrects a particle's position and velocity after
// integration. Wrapping folds the position back into [-Dist, Dist) and
// leaves the velocity alone; square walls clamp the position to
// [-Dist, Dist] and reflect the velocity on every clamped axis.
func (w Walls) ApplyPostStep(pos, vel r2.Vec) (r2.Vec, r2.Vec) {
	switch w.Kind {
	case WallsWrapping:
		pos.X = wrapPosition(pos.X, w.Dist)
		pos.Y = wrapPosition(pos.Y, w.Dist)
	case WallsSquare:
		pos.X, vel.X = clampReflect(pos.X, vel.X, w.Dist)
		pos.Y, vel.Y = clampReflect(pos.Y, vel.Y, w.Dist)
	}
	return pos, vel
}

func wrapPosition(p, dist float64) float64 {
	for p >= dist {
		p -= 2 * dist
	}
	for p < -dist {
		p += 2 * dist
	}
	return p
}

func clampReflect(p, v, dist float64) (float64, float64) {
	if p > dist {
		return dist, -v
	}
	if p < -dist {
		return -dist, -v
	}
	return p, v
}
