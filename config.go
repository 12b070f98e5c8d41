package plife

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/rand"
)

// ConfigError reports a malformed decoded configuration value. It is fatal
// to startup and surfaced from Initialize; nothing recovers from it
// internally.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Config is the decoded configuration the core consumes. File syntax and
// parsing live with the host; the core only sees these values.
type Config struct {
	Ruleset RulesetConfig `json:"ruleset"`
	Walls   WallsConfig   `json:"walls"`
	Points  PointsConfig  `json:"points"`
}

// RulesetConfig picks exactly one ruleset source: an explicit precise
// table or procedural distributions.
type RulesetConfig struct {
	Precise    *PreciseConfig    `json:"precise,omitempty"`
	Procedural *ProceduralConfig `json:"procedural,omitempty"`
}

// PreciseConfig is an explicitly specified, fixed interaction table.
type PreciseConfig struct {
	Friction float64      `json:"friction"`
	Types    []TypeParams `json:"types"`
}

// WallsConfig is the decoded wall specification. Dist is required unless
// Type is "none" and is sampled once at initialization.
type WallsConfig struct {
	Type string        `json:"type"`
	Dist *Distribution `json:"dist,omitempty"`
}

// PointsConfig picks exactly one spawn spec: a single count with implicit
// uniform-area placement, or a list of explicit clusters.
type PointsConfig struct {
	Count *Distribution `json:"count,omitempty"`
	List  []SpawnEntry  `json:"list,omitempty"`
}

// Validate checks the structural invariants of the configuration. Sampled
// values that can only be judged after generation (spawn counts, wall
// distance, list entry types against a procedural type count) are checked
// during Initialize instead.
func (c Config) Validate() error {
	if err := c.Ruleset.validate(); err != nil {
		return err
	}
	if err := c.Walls.validate(); err != nil {
		return err
	}
	return c.Points.validate()
}

func (rc RulesetConfig) validate() error {
	if (rc.Precise == nil) == (rc.Procedural == nil) {
		return &ConfigError{Field: "ruleset", Reason: "exactly one of precise or procedural must be set"}
	}
	if rc.Procedural != nil {
		p := rc.Procedural
		for _, d := range []struct {
			field string
			dist  Distribution
		}{
			{"ruleset.procedural.num_types", p.NumTypes},
			{"ruleset.procedural.attraction", p.Attraction},
			{"ruleset.procedural.min_r", p.MinR},
			{"ruleset.procedural.max_r", p.MaxR},
			{"ruleset.procedural.friction", p.Friction},
		} {
			if err := d.dist.validate(d.field); err != nil {
				return err
			}
		}
		return nil
	}
	p := rc.Precise
	if p.Friction < 0 || p.Friction > 1 {
		return &ConfigError{Field: "ruleset.precise.friction", Reason: fmt.Sprintf("friction %v outside [0, 1]", p.Friction)}
	}
	n := len(p.Types)
	if n == 0 {
		return &ConfigError{Field: "ruleset.precise.types", Reason: "at least one type required"}
	}
	for i, row := range p.Types {
		if len(row.Attractions) != n || len(row.MinR) != n || len(row.MaxR) != n {
			return &ConfigError{
				Field:  fmt.Sprintf("ruleset.precise.types[%d]", i),
				Reason: fmt.Sprintf("rows must have %d entries each", n),
			}
		}
		for j := range row.MinR {
			if row.MinR[j] < 0 {
				return &ConfigError{
					Field:  fmt.Sprintf("ruleset.precise.types[%d].min_r[%d]", i, j),
					Reason: fmt.Sprintf("min_r %v is negative", row.MinR[j]),
				}
			}
		}
	}
	return nil
}

func (wc WallsConfig) validate() error {
	switch wc.Type {
	case "none", "":
	case "wrapping", "square":
		if wc.Dist == nil {
			return &ConfigError{Field: "walls.dist", Reason: fmt.Sprintf("%s walls require a distance", wc.Type)}
		}
		if err := wc.Dist.validate("walls.dist"); err != nil {
			return err
		}
	default:
		return &ConfigError{Field: "walls.type", Reason: fmt.Sprintf("unknown wall type %q", wc.Type)}
	}
	return nil
}

func (pc PointsConfig) validate() error {
	if (pc.Count == nil) == (len(pc.List) == 0) {
		return &ConfigError{Field: "points", Reason: "exactly one of count or list must be set"}
	}
	if pc.Count != nil {
		return pc.Count.validate("points.count")
	}
	for i, e := range pc.List {
		for _, d := range []struct {
			field string
			dist  Distribution
		}{
			{fmt.Sprintf("points.list[%d].num", i), e.Num},
			{fmt.Sprintf("points.list[%d].x", i), e.X},
			{fmt.Sprintf("points.list[%d].y", i), e.Y},
		} {
			if err := d.dist.validate(d.field); err != nil {
				return err
			}
		}
	}
	return nil
}

func (wc WallsConfig) build(rng *rand.Rand) (Walls, error) {
	if wc.Type == "none" || wc.Type == "" {
		return NoWalls(), nil
	}
	dist := wc.Dist.Sample(rng)
	if dist <= 0 {
		return Walls{}, &ConfigError{Field: "walls.dist", Reason: fmt.Sprintf("sampled distance %v is not positive", dist)}
	}
	if wc.Type == "wrapping" {
		return WrappingWalls(dist), nil
	}
	return SquareWalls(dist), nil
}

// Initialize builds a ready-to-step simulation from a decoded
// configuration. The seed fixes every random draw, so the same
// configuration and seed always produce the same ruleset, walls and
// initial population. Malformed input fails with a *ConfigError.
func Initialize(cfg Config, seed uint64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	var ruleset *Ruleset
	if cfg.Ruleset.Precise != nil {
		ruleset = GeneratePrecise(cfg.Ruleset.Precise.Types, cfg.Ruleset.Precise.Friction)
	} else {
		ruleset = GenerateProcedural(*cfg.Ruleset.Procedural, rng)
	}

	walls, err := cfg.Walls.build(rng)
	if err != nil {
		return nil, err
	}

	var particles []Particle
	if cfg.Points.Count != nil {
		particles, err = SpawnUniform(*cfg.Points.Count, walls.Dist, ruleset.NumTypes, rng)
	} else {
		particles, err = SpawnList(cfg.Points.List, ruleset.NumTypes, rng)
	}
	if err != nil {
		return nil, err
	}

	return NewSimulation(particles, ruleset, BuildCache(ruleset), walls), nil
}

// LoadConfig reads and decodes a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveRuleset writes a generated ruleset to path as JSON so a good one can
// be reused across runs.
func SaveRuleset(path string, rs *Ruleset) error {
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadRuleset reads a ruleset previously written by SaveRuleset.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("decode ruleset %s: %w", path, err)
	}
	if len(rs.Params) != rs.NumTypes {
		return nil, &ConfigError{Field: "params", Reason: fmt.Sprintf("expected %d rows, got %d", rs.NumTypes, len(rs.Params))}
	}
	for a, row := range rs.Params {
		if len(row) != rs.NumTypes {
			return nil, &ConfigError{Field: fmt.Sprintf("params[%d]", a), Reason: fmt.Sprintf("expected %d entries, got %d", rs.NumTypes, len(row))}
		}
	}
	return &rs, nil
}
