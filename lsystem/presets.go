package lsystem

// Presets holds the classic curves keyed by name. The axiom, rules and
// angles are part of each curve's identity; Level is the depth the curve
// is usually drawn at.
var Presets = map[string]Definition{
	"heighway": {
		Name:  "heighway dragon",
		Axiom: "FX",
		Rules: map[string]string{"X": "X+YF+", "Y": "-FX-Y"},
		Level: 7, Length: 1, Angle: 90,
	},
	"twin-dragon": {
		Name:  "twin dragon",
		Axiom: "FX+FX+",
		Rules: map[string]string{"X": "X+YF", "Y": "FX-Y"},
		Level: 10, Length: 1, Angle: 90,
	},
	"tetra-dragon": {
		Name:  "tetra dragon",
		Axiom: "F",
		Rules: map[string]string{"F": "F+F-F"},
		Level: 6, Length: 1, Angle: 120,
	},
	"levy": {
		Name:  "levy dragon",
		Axiom: "F",
		Rules: map[string]string{"F": "+F--F+"},
		Level: 13, Length: 1, InitAngle: 90, Angle: 45,
	},
	"koch-snowflake": {
		Name:  "koch snowflake",
		Axiom: "F++F++F",
		Rules: map[string]string{"F": "F-F++F-F"},
		Level: 2, Length: 1, Angle: 60,
	},
	"koch-curve": {
		Name:  "koch curve",
		Axiom: "F+F+F+F",
		Rules: map[string]string{"F": "F+F-F-FF+F+F-F"},
		Level: 2, Length: 1, Angle: 90,
	},
	"sierpinski": {
		Name:  "sierpinski triangle",
		Axiom: "F+F+F",
		Rules: map[string]string{"F": "F+F-F-F+F"},
		Level: 5, Length: 1, Angle: 120,
	},
	"hilbert": {
		Name:  "hilbert curve",
		Axiom: "X",
		Rules: map[string]string{"X": "-YF+XFX+FY-", "Y": "+XF-YFY-FX+"},
		Level: 5, Length: 1, Angle: 90,
	},
	"moore": {
		Name:  "moore curve",
		Axiom: "XFX+F+XFX",
		Rules: map[string]string{"X": "-YF+XFX+FY-", "Y": "+XF-YFY-FX+"},
		Level: 4, Length: 1, Angle: 90,
	},
	"peano": {
		Name:  "peano curve",
		Axiom: "X",
		Rules: map[string]string{"X": "XFYFX+F+YFXFY-F-XFYFX", "Y": "YFXFY-F-XFYFX+F+YFXFY"},
		Level: 3, Length: 1, Angle: 90,
	},
	"tiles": {
		Name:  "tiles",
		Axiom: "F+F+F+F",
		Rules: map[string]string{"F": "FF+F-F+F+FF"},
		Level: 2, Length: 1, Angle: 90,
	},
	"pentadendryt": {
		Name:  "pentadendryt",
		Axiom: "F",
		Rules: map[string]string{"F": "F+F-F--F+F+F"},
		Level: 4, Length: 2, Angle: 72,
	},
}
