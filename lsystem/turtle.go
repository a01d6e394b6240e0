package lsystem

import (
	"math"
	"strings"

	"github.com/scottkirkwood/fract"
)

// Interpret walks symbols with a turtle whose heading vector has magnitude
// step, starting at the origin pointed initialDeg degrees from the
// positive x axis. 'F' moves one step and appends the new position; '+'
// turns the heading clockwise by turnDeg and '-' counter-clockwise, the
// sign convention the classic curve presets were drawn with. Symbols
// outside the drawing alphabet are skipped. The polyline always has
// count('F')+1 points.
func Interpret(initialDeg, turnDeg, step float64, symbols string) fract.PointSequence {
	alpha := fract.Radians(initialDeg)
	theta := fract.Radians(turnDeg)

	sin, cos := math.Sincos(alpha)
	heading := fract.Vec2{X: cos, Y: sin}.Scale(step)

	// '+' turns clockwise, so it applies the negative-angle matrix.
	clockwise := fract.Rotation(-theta)
	counter := fract.Rotation(theta)

	pts := fract.NewPointSequence(strings.Count(symbols, "F") + 1)
	var pos fract.Vec2
	i := 1
	for _, sym := range symbols {
		switch sym {
		case '+':
			heading = clockwise.Apply(heading)
		case '-':
			heading = counter.Apply(heading)
		case 'F':
			pos = pos.Add(heading)
			pts.X[i], pts.Y[i] = pos.X, pos.Y
			i++
		}
	}
	return pts
}
