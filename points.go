package fract

// PointSequence holds the xy coordinates of points on a plane as two
// parallel slices of equal length.
type PointSequence struct {
	X, Y []float64
}

// NewPointSequence returns a sequence of n points, all at the origin.
func NewPointSequence(n int) PointSequence {
	return PointSequence{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// Len returns the number of points.
func (p PointSequence) Len() int {
	return len(p.X)
}

// At returns point i.
func (p PointSequence) At(i int) Vec2 {
	return Vec2{p.X[i], p.Y[i]}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Bounds returns the smallest rectangle covering every point in p.
// An empty sequence yields the zero Rect.
func (p PointSequence) Bounds() Rect {
	if p.Len() == 0 {
		return Rect{}
	}
	r := Rect{MinX: p.X[0], MinY: p.Y[0], MaxX: p.X[0], MaxY: p.Y[0]}
	for i := 1; i < p.Len(); i++ {
		if p.X[i] < r.MinX {
			r.MinX = p.X[i]
		}
		if p.X[i] > r.MaxX {
			r.MaxX = p.X[i]
		}
		if p.Y[i] < r.MinY {
			r.MinY = p.Y[i]
		}
		if p.Y[i] > r.MaxY {
			r.MaxY = p.Y[i]
		}
	}
	return r
}
