package layout

import "github.com/labelkit/labelkit/internal/textfit"

// Draw primitives emitted by the engine. Coordinates are absolute points
// with the origin at the top-left of the page; text Y is the baseline.

// Op is a single drawing command on a page.
type Op interface {
	isOp()
}

// TextOp draws one run of text.
type TextOp struct {
	X, Y float64
	Text string
	Font textfit.Font
	Size float64
}

// LineOp draws a straight line.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
}

// RectOp strokes a rectangle; Radius > 0 rounds the corners.
type RectOp struct {
	X, Y   float64
	W, H   float64
	Width  float64
	Radius float64
}

func (TextOp) isOp() {}
func (LineOp) isOp() {}
func (RectOp) isOp() {}

// Page is one laid-out page: its size and the ordered draw commands on it.
type Page struct {
	Width  float64
	Height float64
	Number int
	Ops    []Op
}

func (p *Page) text(x, y float64, s string, f textfit.Font, size float64) {
	p.Ops = append(p.Ops, TextOp{X: x, Y: y, Text: s, Font: f, Size: size})
}

func (p *Page) line(x1, y1, x2, y2, w float64) {
	p.Ops = append(p.Ops, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: w})
}

func (p *Page) rect(x, y, w, h, lw, radius float64) {
	p.Ops = append(p.Ops, RectOp{X: x, Y: y, W: w, H: h, Width: lw, Radius: radius})
}
