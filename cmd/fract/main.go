// Renders a named fractal preset to an image file: scatter plots for the
// random-orbit and attractor presets, connected lines for the L-systems.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"sort"

	"github.com/scottkirkwood/fract"
	"github.com/scottkirkwood/fract/ifs"
	"github.com/scottkirkwood/fract/lsystem"
)

const defaultOrbitSteps = 90000

var (
	presetFlag    = flag.String("preset", "fern", "Preset name (see -list)")
	nFlag         = flag.Int("n", -1, "Iteration count, preset default when negative")
	seedFlag      = flag.String("seed", "", "Hex value for the seed to use")
	formatFlag    = flag.String("format", "png", "Line plot format: png, svg or pdf")
	lengthFlag    = flag.Float64("length", 0, "Step length override (L-systems)")
	initAngleFlag = flag.Float64("init-angle", 0, "Initial heading override, degrees (L-systems)")
	angleFlag     = flag.Float64("angle", 0, "Turn angle override, degrees (L-systems)")
	colorFlag     = flag.String("color", "", "Plot color as #RRGGBB")
	titleFlag     = flag.String("title", "", "Plot title, used in the output name")
	listFlag      = flag.Bool("list", false, "List preset names and exit")
)

func main() {
	flag.Parse()
	if *listFlag {
		for _, name := range presetNames() {
			fmt.Println(name)
		}
		return
	}

	g, err := fract.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}

	opts := fract.Options{Title: *titleFlag}
	if *colorFlag != "" {
		col, err := parseColor(*colorFlag)
		if err != nil {
			fmt.Printf("Bad -color value: %v\n", err)
			return
		}
		opts.Color = col
	}
	prefix := *presetFlag + "-"
	if opts.Title != "" {
		prefix = opts.Title + "-"
	}

	name := *presetFlag
	switch {
	case ifs.Presets[name] != nil:
		pts, err := ifs.Presets[name]().Generate(orbitSteps(), g.Rand())
		if err != nil {
			fmt.Printf("Unable to generate %q: %v\n", name, err)
			return
		}
		writeScatter(g, pts, prefix, opts)
	case isClifford(name):
		cp := ifs.CliffordPresets[name]
		pts, err := ifs.Clifford(orbitSteps(), cp.A, cp.B, cp.C, cp.D)
		if err != nil {
			fmt.Printf("Unable to generate %q: %v\n", name, err)
			return
		}
		writeScatter(g, pts, prefix, opts)
	case isLsystem(name):
		def := lsystem.Presets[name]
		applyOverrides(&def)
		level := def.Level
		if *nFlag >= 0 {
			level = *nFlag
		}
		pts, err := def.Points(level)
		if err != nil {
			fmt.Printf("Unable to generate %q: %v\n", name, err)
			return
		}
		ctx := fract.Polyline(pts, opts)
		if err := g.SafeWrite(ctx, prefix, "."+*formatFlag); err != nil {
			fmt.Printf("Unable to write image: %v\n", err)
		}
	default:
		fmt.Printf("Unknown preset %q, try -list\n", name)
	}
}

func writeScatter(g fract.Seed, pts fract.PointSequence, prefix string, opts fract.Options) {
	ctx := fract.Scatter(pts, opts)
	if err := g.SafeWritePNG(ctx, prefix); err != nil {
		fmt.Printf("Unable to write image: %v\n", err)
	}
}

func orbitSteps() int {
	if *nFlag >= 0 {
		return *nFlag
	}
	return defaultOrbitSteps
}

// applyOverrides copies any geometry flags that were set on the command
// line into the definition.
func applyOverrides(def *lsystem.Definition) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length":
			def.Length = *lengthFlag
		case "init-angle":
			def.InitAngle = *initAngleFlag
		case "angle":
			def.Angle = *angleFlag
		}
	})
}

func isClifford(name string) bool {
	_, ok := ifs.CliffordPresets[name]
	return ok
}

func isLsystem(name string) bool {
	_, ok := lsystem.Presets[name]
	return ok
}

func presetNames() []string {
	var names []string
	for name := range ifs.Presets {
		names = append(names, name)
	}
	for name := range ifs.CliffordPresets {
		names = append(names, name)
	}
	for name := range lsystem.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseColor(s string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	return color.RGBA{r, g, b, 0xFF}, nil
}
