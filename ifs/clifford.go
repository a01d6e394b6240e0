package ifs

import (
	"math"

	"github.com/scottkirkwood/fract"
)

// CliffordParams are the four coefficients of a Clifford attractor.
type CliffordParams struct {
	A, B, C, D float64
}

// CliffordPresets holds known-good parameter sets keyed by name.
var CliffordPresets = map[string]CliffordParams{
	"clifford":       {1.7, 1.7, 0.06, 1.2},
	"clifford-swirl": {1.5, -1.8, 1.6, 0.9},
	"clifford-bloom": {-1.4, 1.6, 1.0, 0.7},
}

// Clifford iterates the attractor recurrence
//
//	x[i] = sin(a·y[i-1]) + c·cos(a·x[i-1])
//	y[i] = sin(b·x[i-1]) + d·cos(b·y[i-1])
//
// from the origin. The result has n+1 points and, unlike Generate, is a
// pure function of its arguments.
func Clifford(n int, a, b, c, d float64) (fract.PointSequence, error) {
	if n < 0 {
		return fract.PointSequence{}, ErrNegativeCount
	}
	pts := fract.NewPointSequence(n + 1)
	for i := 1; i <= n; i++ {
		x, y := pts.X[i-1], pts.Y[i-1]
		pts.X[i] = math.Sin(a*y) + c*math.Cos(a*x)
		pts.Y[i] = math.Sin(b*x) + d*math.Cos(b*y)
	}
	return pts, nil
}
