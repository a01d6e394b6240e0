package ifs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rand"
)

// drawSeq replays a fixed list of draws.
type drawSeq struct {
	vals []float64
	i    int
}

func (d *drawSeq) Float64() float64 {
	v := d.vals[d.i%len(d.vals)]
	d.i++
	return v
}

func TestGenerateLengthAndOrigin(t *testing.T) {
	sys := FernLeaf()
	for _, n := range []int{0, 1, 17, 1000} {
		pts, err := sys.Generate(n, rand.New(1))
		require.NoError(t, err)
		assert.Equal(t, n+1, len(pts.X))
		assert.Equal(t, n+1, len(pts.Y))
		assert.Equal(t, 0.0, pts.X[0])
		assert.Equal(t, 0.0, pts.Y[0])
	}
}

func TestGenerateConstantMap(t *testing.T) {
	sys := System{{Threshold: -1.0, Map: Map{E: 5, F: 5}}}
	pts, err := sys.Generate(4, rand.New(1))
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		assert.Equal(t, 5.0, pts.X[i], "point %d", i)
		assert.Equal(t, 5.0, pts.Y[i], "point %d", i)
	}
}

func TestGenerateFirstMatchWins(t *testing.T) {
	// Both thresholds are below 0.6 on the first draw; the first map in
	// order must win. The second draw only clears the sentinel.
	sys := System{
		{Threshold: 0.5, Map: Map{E: 1}},
		{Threshold: -1.0, Map: Map{F: 1}},
	}
	pts, err := sys.Generate(2, &drawSeq{vals: []float64{0.6, 0.3}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, pts.X[1])
	assert.Equal(t, 0.0, pts.Y[1])
	assert.Equal(t, 0.0, pts.X[2])
	assert.Equal(t, 1.0, pts.Y[2])
}

func TestGenerateNegativeCount(t *testing.T) {
	_, err := FernLeaf().Generate(-1, rand.New(1))
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sys  System
		want error
	}{
		{"empty", System{}, ErrEmptySystem},
		{"ascending", System{{Threshold: 0.1}, {Threshold: 0.5}, {Threshold: -1}}, ErrBadThresholds},
		{"repeated", System{{Threshold: 0.5}, {Threshold: 0.5}, {Threshold: -1}}, ErrBadThresholds},
		{"no sentinel", System{{Threshold: 0.5}, {Threshold: 0.1}}, ErrNoSentinel},
		{"ok", System{{Threshold: 0.5}, {Threshold: -1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sys.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestFromArraysLengthMismatch(t *testing.T) {
	_, err := FromArrays(
		[]float64{0.5, -1},
		[]float64{1, 1},
		[]float64{1, 1},
		[]float64{1}, // short
		[]float64{1, 1},
		[]float64{1, 1},
		[]float64{1, 1},
	)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPresets(t *testing.T) {
	for name, build := range Presets {
		t.Run(name, func(t *testing.T) {
			sys := build()
			require.NoError(t, sys.Validate())
			pts, err := sys.Generate(1000, rand.New(7))
			require.NoError(t, err)
			assert.Equal(t, 1001, pts.Len())
		})
	}
}
