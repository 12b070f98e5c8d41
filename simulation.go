package plife

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// RSmooth shapes the short-range repulsion branch of the force law. It is
// an engine constant, not configuration.
const RSmooth = 2.0

// Pairs closer than this squared distance are skipped entirely; it removes
// self-interaction and the singularity of near-coincident particles.
const minPairDist2 = 0.01

// Floor for the tent denominator when a pair has MinR == MaxR, so a
// degenerate pair contributes a finite force instead of NaN. A single NaN
// velocity would poison neighboring particles on every following tick.
const tentEpsilon = 1e-9

// Simulation holds the double-buffered particle state together with the
// immutable pieces of a run: the flattened interaction table, the boundary
// policy and the friction coefficient.
type Simulation struct {
	prev, next []Particle

	ruleset *Ruleset
	cache   *InteractionCache
	walls   Walls

	workers int
}

// NewSimulation assembles a ready-to-step simulation. The particle slice is
// taken over as the first snapshot and must not be mutated by the caller.
func NewSimulation(particles []Particle, ruleset *Ruleset, cache *InteractionCache, walls Walls) *Simulation {
	return &Simulation{
		prev:    particles,
		next:    make([]Particle, len(particles)),
		ruleset: ruleset,
		cache:   cache,
		walls:   walls,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Snapshot returns the current fully-completed particle state. The slice is
// owned by the simulation and only valid to read until the next Step.
func (s *Simulation) Snapshot() []Particle { return s.prev }

// Ruleset returns the immutable ruleset of the run.
func (s *Simulation) Ruleset() *Ruleset { return s.ruleset }

// Walls returns the boundary policy of the run.
func (s *Simulation) Walls() Walls { return s.walls }

// Step advances the simulation by one tick.
//
// Every particle's update reads exclusively from the previous snapshot and
// writes exclusively to its own slot of the next one, so the per-particle
// work is split across workers without locks and the result is identical
// whatever the scheduling order. The WaitGroup is the inter-tick barrier:
// no tick starts reading until all writes of the previous one are done.
func (s *Simulation) Step() {
	n := len(s.prev)
	chunk := (n + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				s.next[i] = s.stepParticle(i)
			}
		}(start, end)
	}
	wg.Wait()
	s.prev, s.next = s.next, s.prev
}

// stepParticle computes the next state of particle i from the previous
// snapshot: all-pairs force accumulation, forward-Euler integration with a
// unit time step, exponential velocity damping, then boundary enforcement.
func (s *Simulation) stepParticle(i int) Particle {
	p := s.prev[i]
	accum := p.Velocity
	for j := range s.prev {
		q := &s.prev[j]
		delta := s.walls.AdjustDelta(r2.Sub(q.Position, p.Position))
		d2 := delta.X*delta.X + delta.Y*delta.Y
		params := s.cache.At(p.Type, q.Type)
		if d2 > params.MaxR*params.MaxR || d2 < minPairDist2 {
			continue
		}
		r := math.Sqrt(d2)
		delta = r2.Scale(1/r, delta)
		accum = r2.Add(accum, r2.Scale(pairForce(r, params), delta))
	}
	p.Position = r2.Add(p.Position, accum)
	p.Velocity = r2.Scale(1-s.ruleset.Friction, accum)
	p.Position, p.Velocity = s.walls.ApplyPostStep(p.Position, p.Velocity)
	return p
}

// pairForce evaluates the piecewise force law at distance r. Above MinR it
// is a tent: zero at both radii, equal to Attraction at their midpoint. At
// and below MinR it is a smooth repulsion that is zero at MinR, matching
// the tent branch, and unbounded as r approaches zero. Positive values pull
// the particles together.
func pairForce(r float64, params InteractionParams) float64 {
	if r > params.MinR {
		denom := params.MaxR - params.MinR
		if denom < tentEpsilon {
			denom = tentEpsilon
		}
		numer := 2 * math.Abs(r-0.5*(params.MaxR+params.MinR))
		return params.Attraction * (1 - numer/denom)
	}
	return RSmooth * params.MinR * (1/(params.MinR+RSmooth) - 1/(r+RSmooth))
}
