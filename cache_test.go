package plife

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestBuildCacheMatchesRuleset(t *testing.T) {
	cfg, _ := Template("diversity")
	rs := GenerateProcedural(cfg, rand.New(rand.NewSource(11)))
	cache := BuildCache(rs)

	if cache.NumTypes() != rs.NumTypes {
		t.Fatalf("NumTypes = %d, want %d", cache.NumTypes(), rs.NumTypes)
	}
	for a := 0; a < rs.NumTypes; a++ {
		for b := 0; b < rs.NumTypes; b++ {
			if cache.At(a, b) != rs.Params[a][b] {
				t.Errorf("At(%d,%d) = %+v, want %+v", a, b, cache.At(a, b), rs.Params[a][b])
			}
		}
	}
}

func TestCacheOrderedPairsDistinct(t *testing.T) {
	types := []TypeParams{
		{Attractions: []float64{0, 0.5}, MinR: []float64{1, 1}, MaxR: []float64{2, 2}},
		{Attractions: []float64{-0.5, 0}, MinR: []float64{1, 1}, MaxR: []float64{2, 2}},
	}
	cache := BuildCache(GeneratePrecise(types, 0))

	if got := cache.At(0, 1).Attraction; got != 0.5 {
		t.Errorf("At(0,1).Attraction = %v, want 0.5", got)
	}
	if got := cache.At(1, 0).Attraction; got != -0.5 {
		t.Errorf("At(1,0).Attraction = %v, want -0.5", got)
	}
}
