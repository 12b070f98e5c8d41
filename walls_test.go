package plife

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestAdjustDeltaWrapping(t *testing.T) {
	w := WrappingWalls(10)
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"long positive wraps negative", r2.Vec{X: 19}, r2.Vec{X: -1}},
		{"long negative wraps positive", r2.Vec{X: -19}, r2.Vec{X: 1}},
		{"short delta unchanged", r2.Vec{X: 5, Y: -5}, r2.Vec{X: 5, Y: -5}},
		{"axes independent", r2.Vec{X: 19, Y: -12}, r2.Vec{X: -1, Y: 8}},
		{"at the boundary unchanged", r2.Vec{X: 10}, r2.Vec{X: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.AdjustDelta(tt.in); got != tt.want {
				t.Errorf("AdjustDelta(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdjustDeltaOtherKindsIdentity(t *testing.T) {
	in := r2.Vec{X: 19, Y: -19}
	for _, w := range []Walls{NoWalls(), SquareWalls(10)} {
		if got := w.AdjustDelta(in); got != in {
			t.Errorf("%v.AdjustDelta(%v) = %v, want unchanged", w, in, got)
		}
	}
}

func TestApplyPostStepWrapping(t *testing.T) {
	w := WrappingWalls(10)
	vel := r2.Vec{X: 3, Y: -2}
	tests := []struct {
		name    string
		pos     r2.Vec
		wantPos r2.Vec
	}{
		{"beyond positive edge", r2.Vec{X: 10.5}, r2.Vec{X: -9.5}},
		{"beyond negative edge", r2.Vec{X: -10.5}, r2.Vec{X: 9.5}},
		{"exactly at positive edge", r2.Vec{X: 10}, r2.Vec{X: -10}},
		{"inside unchanged", r2.Vec{X: 7, Y: -7}, r2.Vec{X: 7, Y: -7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPos, gotVel := w.ApplyPostStep(tt.pos, vel)
			if gotPos != tt.wantPos {
				t.Errorf("position = %v, want %v", gotPos, tt.wantPos)
			}
			if gotVel != vel {
				t.Errorf("velocity = %v, want unchanged %v", gotVel, vel)
			}
		})
	}
}

func TestApplyPostStepSquare(t *testing.T) {
	w := SquareWalls(10)
	tests := []struct {
		name             string
		pos, vel         r2.Vec
		wantPos, wantVel r2.Vec
	}{
		{
			"crossing +x clamps and reflects",
			r2.Vec{X: 12, Y: 1}, r2.Vec{X: 3, Y: 1},
			r2.Vec{X: 10, Y: 1}, r2.Vec{X: -3, Y: 1},
		},
		{
			"crossing -y clamps and reflects",
			r2.Vec{X: 1, Y: -11}, r2.Vec{X: 2, Y: -4},
			r2.Vec{X: 1, Y: -10}, r2.Vec{X: 2, Y: 4},
		},
		{
			"both axes reflect",
			r2.Vec{X: -12, Y: 11}, r2.Vec{X: -1, Y: 1},
			r2.Vec{X: -10, Y: 10}, r2.Vec{X: 1, Y: -1},
		},
		{
			"inside untouched",
			r2.Vec{X: 9, Y: -9}, r2.Vec{X: 5, Y: 5},
			r2.Vec{X: 9, Y: -9}, r2.Vec{X: 5, Y: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPos, gotVel := w.ApplyPostStep(tt.pos, tt.vel)
			if gotPos != tt.wantPos || gotVel != tt.wantVel {
				t.Errorf("got (%v, %v), want (%v, %v)", gotPos, gotVel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestApplyPostStepNoneIdentity(t *testing.T) {
	pos, vel := r2.Vec{X: 1e6, Y: -1e6}, r2.Vec{X: 9}
	gotPos, gotVel := NoWalls().ApplyPostStep(pos, vel)
	if gotPos != pos || gotVel != vel {
		t.Errorf("got (%v, %v), want identity", gotPos, gotVel)
	}
}
