package fract

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is a drawing surface for connected-line output. It wraps a
// vector canvas so the same path can be written as PNG, SVG or PDF.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

// NewContext returns a context of the given size in millimeters.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new
// independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, y)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, y)
}

// FillRect draws a rectangle path
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Close closes the current path
func (ctx *Context) Close() {
	ctx.ctx.Close()
}
