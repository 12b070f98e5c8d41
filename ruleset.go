package plife

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// InteractionParams holds the force-law parameters for one ordered pair
// of particle types. MinR and MaxR bound the attractive band; below MinR
// the law switches to pure repulsion.
type InteractionParams struct {
	MinR       float64 `json:"min_r"`
	MaxR       float64 `json:"max_r"`
	Attraction float64 `json:"attraction"`
}

// Ruleset fixes the interaction parameters for a run. It is created once
// at simulation start and never mutated afterwards.
type Ruleset struct {
	NumTypes int                   `json:"num_types"`
	Friction float64               `json:"friction"`
	Params   [][]InteractionParams `json:"params"` // [a][b], all ordered pairs
}

// TypeParams is one row of a precise interaction table: the parameters of
// a single type against every type, itself included.
type TypeParams struct {
	Attractions []float64 `json:"attractions"`
	MinR        []float64 `json:"min_r"`
	MaxR        []float64 `json:"max_r"`
}

// GeneratePrecise builds a ruleset directly from an explicit table.
func GeneratePrecise(types []TypeParams, friction float64) *Ruleset {
	n := len(types)
	rs := &Ruleset{
		NumTypes: n,
		Friction: friction,
		Params:   make([][]InteractionParams, n),
	}
	for a, row := range types {
		rs.Params[a] = make([]InteractionParams, n)
		for b := 0; b < n; b++ {
			rs.Params[a][b] = InteractionParams{
				MinR:       row.MinR[b],
				MaxR:       row.MaxR[b],
				Attraction: row.Attractions[b],
			}
		}
	}
	return rs
}

// ProceduralConfig describes the distributions a procedural ruleset is
// sampled from.
type ProceduralConfig struct {
	NumTypes   Distribution `json:"num_types"`
	Attraction Distribution `json:"attraction"`
	MinR       Distribution `json:"min_r"`
	MaxR       Distribution `json:"max_r"`
	Friction   Distribution `json:"friction"`
}

// GenerateProcedural samples a full ruleset from cfg. The number of types
// is drawn once (rounded, minimum 1), then attraction, min and max radius
// are drawn independently for every ordered pair, then friction is drawn
// once. The output is bit-identical across calls with the same rng seed.
//
// A pair whose sampled radii come out inverted has them swapped. This is a
// deliberate repair policy: the force law is only well-defined for
// MinR <= MaxR, and rejecting the whole ruleset over one draw would make
// procedural generation flaky.
func GenerateProcedural(cfg ProceduralConfig, rng *rand.Rand) *Ruleset {
	n := int(math.Round(cfg.NumTypes.Sample(rng)))
	if n < 1 {
		n = 1
	}
	rs := &Ruleset{
		NumTypes: n,
		Params:   make([][]InteractionParams, n),
	}
	for a := 0; a < n; a++ {
		rs.Params[a] = make([]InteractionParams, n)
		for b := 0; b < n; b++ {
			attraction := cfg.Attraction.Sample(rng)
			minR := cfg.MinR.Sample(rng)
			maxR := cfg.MaxR.Sample(rng)
			if minR > maxR {
				minR, maxR = maxR, minR
			}
			rs.Params[a][b] = InteractionParams{
				MinR:       minR,
				MaxR:       maxR,
				Attraction: attraction,
			}
		}
	}
	rs.Friction = cfg.Friction.Sample(rng)
	return rs
}

// templates are named procedural presets selectable by the host.
var templates = map[string]ProceduralConfig{
	"diversity": {
		NumTypes:   Constant(12),
		Attraction: Normal(-0.01, 0.04),
		MinR:       Uniform(0, 20),
		MaxR:       Uniform(10, 60),
		Friction:   Constant(0.05),
	},
	"balanced": {
		NumTypes:   Constant(9),
		Attraction: Normal(0, 0.04),
		MinR:       Uniform(0, 20),
		MaxR:       Uniform(10, 60),
		Friction:   Constant(0.05),
	},
	"chaos": {
		NumTypes:   Uniform(10, 16),
		Attraction: Normal(0.02, 0.09),
		MinR:       Uniform(0, 30),
		MaxR:       Uniform(30, 100),
		Friction:   Constant(0.01),
	},
	"cool": {
		NumTypes:   Constant(6),
		Attraction: Normal(-0.02, 0.06),
		MinR:       Uniform(0, 20),
		MaxR:       Uniform(20, 60),
		Friction:   Constant(0.1),
	},
	"homogeneity": {
		NumTypes:   Constant(4),
		Attraction: Normal(0, 0.04),
		MinR:       Uniform(10, 10),
		MaxR:       Uniform(10, 80),
		Friction:   Constant(0.05),
	},
	"quiescence": {
		NumTypes:   Constant(6),
		Attraction: Normal(-0.02, 0.01),
		MinR:       Uniform(10, 20),
		MaxR:       Uniform(20, 60),
		Friction:   Constant(0.2),
	},
}

// Template looks up a named procedural preset.
func Template(name string) (ProceduralConfig, bool) {
	cfg, ok := templates[name]
	return cfg, ok
}

// TemplateNames lists the available presets in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
