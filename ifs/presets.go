package ifs

// Classic iterated function systems. The parallel arrays keep the
// published coefficient tables recognizable; FromArrays pairs them up and
// checks the threshold ordering.

func mustFromArrays(p, a, b, c, d, e, f []float64) System {
	sys, err := FromArrays(p, a, b, c, d, e, f)
	if err != nil {
		panic(err)
	}
	return sys
}

// Spiral is a three-map spiral.
func Spiral() System {
	return mustFromArrays(
		[]float64{0.104348, 0.052174, -1.0},
		[]float64{0.787879, -0.121212, 0.181818},
		[]float64{-0.424242, 0.257576, -0.136364},
		[]float64{0.242424, 0.151515, 0.090909},
		[]float64{0.859848, 0.053030, 0.181818},
		[]float64{1.758647, -6.721654, 6.086107},
		[]float64{1.408065, 1.377236, 1.568035},
	)
}

// Dragon is a two-map dragon.
func Dragon() System {
	return mustFromArrays(
		[]float64{0.212527, -1.0},
		[]float64{0.824074, 0.088272},
		[]float64{0.281428, 0.520988},
		[]float64{-0.212346, -0.463889},
		[]float64{0.864198, -0.377778},
		[]float64{-1.882290, 0.785360},
		[]float64{-0.110607, 8.095795},
	)
}

// FernLeaf is the Barnsley fern.
func FernLeaf() System {
	return mustFromArrays(
		[]float64{0.15, 0.08, 0.01, -1.0},
		[]float64{0.85, -0.15, 0.20, 0.0},
		[]float64{0.04, 0.28, -0.26, 0.0},
		[]float64{-0.04, 0.26, 0.23, 0.0},
		[]float64{0.85, 0.24, 0.22, 0.16},
		[]float64{0.0, 0.0, 0.0, 0.0},
		[]float64{1.6, 0.44, 1.6, 0.0},
	)
}

// MapleLeaf is a four-map maple leaf.
func MapleLeaf() System {
	return mustFromArrays(
		[]float64{0.65, 0.3, 0.1, -1.0},
		[]float64{0.43, 0.45, 0.49, 0.14},
		[]float64{0.52, -0.49, 0.0, 0.01},
		[]float64{-0.45, 0.47, 0.0, 0.0},
		[]float64{0.5, 0.47, 0.51, 0.51},
		[]float64{1.49, -1.62, 0.02, -0.08},
		[]float64{-0.75, -0.74, 1.62, -1.31},
	)
}

// SierpinskiTriangle is the three half-scale corner maps.
func SierpinskiTriangle() System {
	return mustFromArrays(
		[]float64{0.6666, 0.3333, -1},
		[]float64{0.5, 0.5, 0.5},
		[]float64{0.0, 0.0, 0.0},
		[]float64{0.0, 0.0, 0.0},
		[]float64{0.5, 0.5, 0.5},
		[]float64{0.5, -0.5, -0.5},
		[]float64{-0.5, 0.5, -0.5},
	)
}

// Presets maps preset names to their system constructors.
var Presets = map[string]func() System{
	"spiral":     Spiral,
	"dragon":     Dragon,
	"fern":       FernLeaf,
	"maple":      MapleLeaf,
	"sierpinski": SierpinskiTriangle,
}
