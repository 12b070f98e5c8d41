package plife

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// unboundedSpawnStd is the standard deviation of the normal placement used
// when the world has no walls and uniform spawning has no area to fill.
const unboundedSpawnStd = 5.0

// SpawnEntry describes one cluster of the initial population. When Type is
// nil every particle of the entry draws its type uniformly from the
// ruleset's types, matching uniform spawning; when set, the whole cluster
// is that one type.
type SpawnEntry struct {
	Num  Distribution `json:"num"`
	X    Distribution `json:"x"`
	Y    Distribution `json:"y"`
	Type *int         `json:"type,omitempty"`
}

// SpawnUniform produces the initial population for a single-count spawn
// spec: count particles placed uniformly in [-dist, dist]² with uniformly
// random types and zero velocity. With no wall distance (dist <= 0) there
// is no area to fill and each axis is drawn from Normal(0, 5) instead.
func SpawnUniform(count Distribution, dist float64, numTypes int, rng *rand.Rand) ([]Particle, error) {
	n := int(math.Round(count.Sample(rng)))
	if n < 0 {
		return nil, &ConfigError{Field: "points.count", Reason: fmt.Sprintf("spawn count %d is negative", n)}
	}
	place := Normal(0, unboundedSpawnStd)
	if dist > 0 {
		place = Uniform(-dist, dist)
	}
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			Position: r2.Vec{X: place.Sample(rng), Y: place.Sample(rng)},
			Type:     rng.Intn(numTypes),
		}
	}
	return particles, nil
}

// SpawnList produces the initial population from a list of spawn entries.
func SpawnList(entries []SpawnEntry, numTypes int, rng *rand.Rand) ([]Particle, error) {
	var particles []Particle
	for i, e := range entries {
		if e.Type != nil && (*e.Type < 0 || *e.Type >= numTypes) {
			return nil, &ConfigError{
				Field:  fmt.Sprintf("points.list[%d].type", i),
				Reason: fmt.Sprintf("type %d out of range [0, %d)", *e.Type, numTypes),
			}
		}
		n := int(math.Round(e.Num.Sample(rng)))
		if n < 0 {
			return nil, &ConfigError{
				Field:  fmt.Sprintf("points.list[%d].num", i),
				Reason: fmt.Sprintf("spawn count %d is negative", n),
			}
		}
		for range n {
			p := Particle{
				Position: r2.Vec{X: e.X.Sample(rng), Y: e.Y.Sample(rng)},
			}
			if e.Type != nil {
				p.Type = *e.Type
			} else {
				p.Type = rng.Intn(numTypes)
			}
			particles = append(particles, p)
		}
	}
	return particles, nil
}
