package fract

import "testing"

func TestNewPointSequence(t *testing.T) {
	pts := NewPointSequence(5)
	if pts.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", pts.Len())
	}
	for i := 0; i < pts.Len(); i++ {
		if p := pts.At(i); p != (Vec2{}) {
			t.Errorf("point %d = %+v, want origin", i, p)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		x, y []float64
		want Rect
	}{
		{nil, nil, Rect{}},
		{[]float64{2}, []float64{-3}, Rect{2, -3, 2, -3}},
		{[]float64{0, -1, 4}, []float64{0, 2, -5}, Rect{-1, -5, 4, 2}},
	}
	for _, tt := range tests {
		got := PointSequence{X: tt.x, Y: tt.y}.Bounds()
		if got != tt.want {
			t.Errorf("Bounds(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}
