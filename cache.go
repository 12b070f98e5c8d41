package plife

// InteractionCache flattens a Ruleset into a dense NumTypes² table for
// O(1) ordered-pair lookup during the force pass. It is built once and
// never mutated during a run.
type InteractionCache struct {
	numTypes int
	params   []InteractionParams
}

// BuildCache materializes the flattened table from rs.
func BuildCache(rs *Ruleset) *InteractionCache {
	c := &InteractionCache{
		numTypes: rs.NumTypes,
		params:   make([]InteractionParams, rs.NumTypes*rs.NumTypes),
	}
	for a := 0; a < rs.NumTypes; a++ {
		for b := 0; b < rs.NumTypes; b++ {
			c.params[a*rs.NumTypes+b] = rs.Params[a][b]
		}
	}
	return c
}

// At returns the parameters for the ordered pair (a, b). Out-of-range type
// ids are a programming error and panic via the slice bounds check.
func (c *InteractionCache) At(a, b int) InteractionParams {
	return c.params[a*c.numTypes+b]
}

// NumTypes returns the number of particle types the cache covers.
func (c *InteractionCache) NumTypes() int {
	return c.numTypes
}
