package fract

import (
	"math"
	"testing"
)

func TestRotationOrthonormal(t *testing.T) {
	for _, angle := range []float64{0, 0.1, math.Pi / 4, math.Pi / 2, math.Pi, -2.5, 7.3} {
		m := Rotation(angle)
		if d := m.Det(); math.Abs(d-1) > 1e-12 {
			t.Errorf("Rotation(%v).Det() = %v, want 1", angle, d)
		}
		cols := []Vec2{{m.A, m.C}, {m.B, m.D}}
		for i, col := range cols {
			if math.Abs(col.Len()-1) > 1e-12 {
				t.Errorf("Rotation(%v) column %d has length %v, want 1", angle, i, col.Len())
			}
		}
	}
}

func TestRotationDirection(t *testing.T) {
	tests := []struct {
		angle float64
		in    Vec2
		want  Vec2
	}{
		{math.Pi / 2, Vec2{1, 0}, Vec2{0, 1}},  // CCW quarter turn
		{-math.Pi / 2, Vec2{1, 0}, Vec2{0, -1}}, // CW quarter turn
		{math.Pi, Vec2{3, 4}, Vec2{-3, -4}},
	}
	for _, tt := range tests {
		got := Rotation(tt.angle).Apply(tt.in)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("Rotation(%v).Apply(%+v) = %+v, want %+v", tt.angle, tt.in, got, tt.want)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec2{3, -7}
	for angle := -6.0; angle < 6.0; angle += 0.37 {
		got := Rotation(angle).Apply(v)
		if math.Abs(got.Len()-v.Len()) > 1e-12 {
			t.Errorf("Rotation(%v) changed length: %v -> %v", angle, v.Len(), got.Len())
		}
	}
}
