package fract

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Options control how a point sequence is plotted.
type Options struct {
	Color        color.Color // point or stroke color
	Title        string      // used for output naming, never drawn
	Width        float64     // raster: pixels, vector: millimeters
	Height       float64
	Margin       float64 // fraction of the surface kept blank on each side
	StrokeWidth  float64 // polyline stroke width
	MarkerRadius float64 // scatter dot radius, pixels
}

// DefaultColor is the classic plot blue.
var DefaultColor = color.RGBA{0x00, 0x80, 0xFF, 0x80}

func (o Options) withDefaults(width, height float64) Options {
	if o.Color == nil {
		o.Color = DefaultColor
	}
	if o.Width == 0 {
		o.Width = width
	}
	if o.Height == 0 {
		o.Height = height
	}
	if o.Margin == 0 {
		o.Margin = 0.04
	}
	o.Margin = Clamp(o.Margin, 0, 0.45)
	if o.StrokeWidth == 0 {
		o.StrokeWidth = 0.4
	}
	if o.MarkerRadius == 0 {
		o.MarkerRadius = 0.75
	}
	return o
}

// Scatter renders the points as a dot cloud on a raster surface, one dot
// per point, with the y axis growing upward. The caller writes the result
// out via Seed.SafeWritePNG.
func Scatter(pts PointSequence, opts Options) *gg.Context {
	opts = opts.withDefaults(1024, 768)
	w, h := int(opts.Width), int(opts.Height)
	ctx := gg.NewContext(w, h)
	ctx.SetColor(color.White)
	ctx.Clear()
	ctx.SetColor(opts.Color)
	f := newFit(pts.Bounds(), opts)
	for i := 0; i < pts.Len(); i++ {
		x, y := f.pixel(pts.X[i], pts.Y[i])
		ctx.DrawPoint(x, opts.Height-y, opts.MarkerRadius)
		ctx.Fill()
	}
	return ctx
}

// Polyline renders the points as one connected path on a vector surface.
// The caller writes the result out via Seed.SafeWrite.
func Polyline(pts PointSequence, opts Options) *Context {
	opts = opts.withDefaults(216, 216)
	ctx := NewContext(opts.Width, opts.Height)
	ctx.SetFillColor(color.White)
	ctx.FillRect(0, 0, opts.Width, opts.Height)
	ctx.SetStrokeColor(opts.Color)
	ctx.SetStrokeWidth(opts.StrokeWidth)
	f := newFit(pts.Bounds(), opts)
	for i := 0; i < pts.Len(); i++ {
		x, y := f.pixel(pts.X[i], pts.Y[i])
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.Stroke()
	return ctx
}

// fitter maps plane coordinates into the drawable region of the surface,
// preserving aspect ratio (a circle of points stays a circle).
type fitter struct {
	b              Rect
	x0, x1, y0, y1 float64 // drawable region
}

func newFit(b Rect, opts Options) fitter {
	mx := opts.Width * opts.Margin
	my := opts.Height * opts.Margin
	f := fitter{
		b:  b,
		x0: mx, x1: opts.Width - mx,
		y0: my, y1: opts.Height - my,
	}
	f.b = expandToAspect(b, (f.x1-f.x0)/(f.y1-f.y0))
	return f
}

// expandToAspect grows one side of b, centered, until b has the given
// width/height ratio. Degenerate (zero-size) sides grow to 1.
func expandToAspect(b Rect, aspect float64) Rect {
	if b.Dx() == 0 {
		b.MinX -= 0.5
		b.MaxX += 0.5
	}
	if b.Dy() == 0 {
		b.MinY -= 0.5
		b.MaxY += 0.5
	}
	if b.Dx()/b.Dy() > aspect {
		grow := (b.Dx()/aspect - b.Dy()) / 2
		b.MinY -= grow
		b.MaxY += grow
	} else {
		grow := (b.Dy()*aspect - b.Dx()) / 2
		b.MinX -= grow
		b.MaxX += grow
	}
	return b
}

func (f fitter) pixel(x, y float64) (px, py float64) {
	px = Lerp(f.x0, f.x1, (x-f.b.MinX)/f.b.Dx())
	py = Lerp(f.y0, f.y1, (y-f.b.MinY)/f.b.Dy())
	return px, py
}
