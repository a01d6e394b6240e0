package fract

import (
	"math"
	"testing"
)

func TestExpandToAspect(t *testing.T) {
	tests := []struct {
		b      Rect
		aspect float64
	}{
		{Rect{0, 0, 4, 1}, 1},
		{Rect{0, 0, 1, 4}, 1},
		{Rect{-2, -2, 2, 2}, 2},
		{Rect{1, 1, 1, 1}, 1.5}, // single point
	}
	for _, tt := range tests {
		got := expandToAspect(tt.b, tt.aspect)
		if math.Abs(got.Dx()/got.Dy()-tt.aspect) > 1e-12 {
			t.Errorf("expandToAspect(%+v, %v) ratio = %v", tt.b, tt.aspect, got.Dx()/got.Dy())
		}
		if got.MinX > tt.b.MinX || got.MaxX < tt.b.MaxX || got.MinY > tt.b.MinY || got.MaxY < tt.b.MaxY {
			t.Errorf("expandToAspect(%+v, %v) = %+v does not cover the input", tt.b, tt.aspect, got)
		}
	}
}

func TestFitterPreservesShape(t *testing.T) {
	opts := Options{}.withDefaults(1000, 500)
	f := newFit(Rect{0, 0, 10, 10}, opts)

	// A horizontal and a vertical unit step must map to displacements of
	// equal magnitude.
	x0, y0 := f.pixel(5, 5)
	x1, _ := f.pixel(6, 5)
	_, y1 := f.pixel(5, 6)
	dx, dy := x1-x0, y1-y0
	if math.Abs(dx-dy) > 1e-9 {
		t.Errorf("unit steps map to %v x %v, want equal", dx, dy)
	}

	// Everything stays inside the margins.
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		px, py := f.pixel(p[0], p[1])
		if px < f.x0-1e-9 || px > f.x1+1e-9 || py < f.y0-1e-9 || py > f.y1+1e-9 {
			t.Errorf("pixel(%v, %v) = (%v, %v) outside drawable region", p[0], p[1], px, py)
		}
	}
}

func TestScatterSize(t *testing.T) {
	pts := PointSequence{X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}}
	ctx := Scatter(pts, Options{Width: 64, Height: 32})
	if ctx.Width() != 64 || ctx.Height() != 32 {
		t.Errorf("Scatter size = %dx%d, want 64x32", ctx.Width(), ctx.Height())
	}
}
