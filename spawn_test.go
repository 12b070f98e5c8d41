package plife

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSpawnUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	particles, err := SpawnUniform(Constant(50), 20, 4, rng)
	if err != nil {
		t.Fatalf("SpawnUniform: %v", err)
	}
	if len(particles) != 50 {
		t.Fatalf("got %d particles, want 50", len(particles))
	}
	for i, p := range particles {
		if p.Position.X < -20 || p.Position.X > 20 || p.Position.Y < -20 || p.Position.Y > 20 {
			t.Errorf("particle %d at %v outside [-20, 20]²", i, p.Position)
		}
		if p.Type < 0 || p.Type >= 4 {
			t.Errorf("particle %d type %d out of range", i, p.Type)
		}
		if p.Velocity != (r2.Vec{}) {
			t.Errorf("particle %d has initial velocity %v", i, p.Velocity)
		}
	}
}

func TestSpawnUniformRoundsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	particles, err := SpawnUniform(Constant(49.6), 20, 4, rng)
	if err != nil {
		t.Fatalf("SpawnUniform: %v", err)
	}
	if len(particles) != 50 {
		t.Errorf("got %d particles, want 50", len(particles))
	}
}

func TestSpawnUniformNegativeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	_, err := SpawnUniform(Constant(-1), 20, 4, rng)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConfigError", err)
	}
}

func TestSpawnUniformUnbounded(t *testing.T) {
	// Without a wall distance placement falls back to a normal scatter
	// around the origin rather than an infinite uniform area.
	rng := rand.New(rand.NewSource(5))
	particles, err := SpawnUniform(Constant(500), 0, 2, rng)
	if err != nil {
		t.Fatalf("SpawnUniform: %v", err)
	}
	var mean r2.Vec
	for _, p := range particles {
		mean = r2.Add(mean, p.Position)
	}
	mean = r2.Scale(1/float64(len(particles)), mean)
	if r2.Norm(mean) > 1 {
		t.Errorf("scatter mean %v too far from origin", mean)
	}
}

func TestSpawnListTypes(t *testing.T) {
	two := 2
	entries := []SpawnEntry{
		{Num: Constant(10), X: Normal(0, 1), Y: Normal(0, 1), Type: &two},
		{Num: Constant(10), X: Constant(5), Y: Constant(5)},
	}
	particles, err := SpawnList(entries, 4, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("SpawnList: %v", err)
	}
	if len(particles) != 20 {
		t.Fatalf("got %d particles, want 20", len(particles))
	}
	for i, p := range particles[:10] {
		if p.Type != 2 {
			t.Errorf("cluster particle %d has type %d, want 2", i, p.Type)
		}
	}
	for i, p := range particles[10:] {
		if p.Type < 0 || p.Type >= 4 {
			t.Errorf("untyped particle %d has type %d out of range", i, p.Type)
		}
		if p.Position != (r2.Vec{X: 5, Y: 5}) {
			t.Errorf("untyped particle %d at %v, want (5,5)", i, p.Position)
		}
	}
}

func TestSpawnListTypeOutOfRange(t *testing.T) {
	bad := 4
	entries := []SpawnEntry{{Num: Constant(1), X: Constant(0), Y: Constant(0), Type: &bad}}
	_, err := SpawnList(entries, 4, rand.New(rand.NewSource(9)))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConfigError", err)
	}
}

func TestSpawnListNegativeCount(t *testing.T) {
	entries := []SpawnEntry{{Num: Constant(-2), X: Constant(0), Y: Constant(0)}}
	_, err := SpawnList(entries, 4, rand.New(rand.NewSource(9)))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConfigError", err)
	}
}
