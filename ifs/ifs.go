// Package ifs generates plane fractals from iterated function systems:
// random orbits of weighted affine maps (the chaos game) and a
// deterministic discrete-map attractor.
package ifs

import (
	"errors"
	"fmt"

	"github.com/scottkirkwood/fract"
)

// Map is an affine transform of the plane,
// (x, y) -> (a·x + b·y + e, c·x + d·y + f).
type Map struct {
	A, B, C, D, E, F float64
}

// Apply transforms the point (x, y).
func (m Map) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.E, m.C*x + m.D*y + m.F
}

// WeightedMap pairs a map with its selection threshold. Thresholds are
// cumulative from the top of the system: a draw u in [0,1) selects the
// first map in system order whose threshold is below u.
type WeightedMap struct {
	Threshold float64
	Map
}

// System is an ordered list of weighted maps. Thresholds must be strictly
// descending and the last one must be below zero so that every draw
// selects exactly one map.
type System []WeightedMap

// Validation errors.
var (
	ErrLengthMismatch = errors.New("parameter array length mismatch")
	ErrEmptySystem    = errors.New("system has no maps")
	ErrBadThresholds  = errors.New("thresholds not strictly descending")
	ErrNoSentinel     = errors.New("last threshold does not cover the draw range")
	ErrNegativeCount  = errors.New("negative iteration count")
)

// FromArrays builds a System from parallel parameter arrays, one entry per
// map: p holds the thresholds and a..f the affine coefficients. All seven
// arrays must have the same length.
func FromArrays(p, a, b, c, d, e, f []float64) (System, error) {
	n := len(p)
	for _, coeffs := range [][]float64{a, b, c, d, e, f} {
		if len(coeffs) != n {
			return nil, ErrLengthMismatch
		}
	}
	sys := make(System, n)
	for i := range sys {
		sys[i] = WeightedMap{
			Threshold: p[i],
			Map:       Map{a[i], b[i], c[i], d[i], e[i], f[i]},
		}
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return sys, nil
}

// Validate checks the threshold ordering invariants.
func (s System) Validate() error {
	if len(s) == 0 {
		return ErrEmptySystem
	}
	for i := 1; i < len(s); i++ {
		if s[i].Threshold >= s[i-1].Threshold {
			return fmt.Errorf("%w: map %d", ErrBadThresholds, i)
		}
	}
	if s[len(s)-1].Threshold >= 0 {
		return ErrNoSentinel
	}
	return nil
}

// Uniform is a source of independent uniform [0,1) samples.
// *rand.Rand from pgregory.net/rand satisfies it.
type Uniform interface {
	Float64() float64
}

// Generate plays the chaos game for n steps: each step draws u, picks the
// first map whose threshold is below u and applies it to the previous
// point. The result always has n+1 points and point 0 is the origin.
func (s System) Generate(n int, src Uniform) (fract.PointSequence, error) {
	if n < 0 {
		return fract.PointSequence{}, ErrNegativeCount
	}
	if err := s.Validate(); err != nil {
		return fract.PointSequence{}, err
	}
	pts := fract.NewPointSequence(n + 1)
	for i := 1; i <= n; i++ {
		u := src.Float64()
		for _, wm := range s {
			if wm.Threshold < u {
				pts.X[i], pts.Y[i] = wm.Apply(pts.X[i-1], pts.Y[i-1])
				break
			}
		}
	}
	return pts, nil
}
