// Package overlay provides the debug drawing surface used by the detection
// stages. Stages draw onto a Canvas; the CLI replays a recorded Overlay onto
// the output image.
package overlay

import (
	"image/color"

	"domino-detect/pkg/colorutil"
	"domino-detect/pkg/geometry"
)

// Canvas is a drawing surface in image coordinates.
type Canvas interface {
	Line(a, b geometry.Point2D, col color.RGBA, thickness int)
	Circle(center geometry.Point2D, radius float64, col color.RGBA, thickness int)
	Text(text string, at geometry.Point2D, col color.RGBA)
}

// Palette used by the stages and the result renderer.
var (
	ColorDivider    = colorutil.Magenta
	ColorCenterLine = colorutil.Cyan
	ColorRow        = colorutil.Orange
	ColorSample     = colorutil.Yellow
	ColorEdge       = colorutil.Blue
	ColorPip        = colorutil.SkyBlue
	ColorValid      = colorutil.Green
	ColorInvalid    = colorutil.Red
	ColorUnmatched  = colorutil.White
)

// Nop discards everything drawn on it.
type Nop struct{}

func (Nop) Line(geometry.Point2D, geometry.Point2D, color.RGBA, int) {}
func (Nop) Circle(geometry.Point2D, float64, color.RGBA, int) {}
func (Nop) Text(string, geometry.Point2D, color.RGBA) {}

// OverlayLine is a recorded line.
type OverlayLine struct {
	A, B      geometry.Point2D
	Color     color.RGBA
	Thickness int
}

// OverlayCircle is a recorded circle outline.
type OverlayCircle struct {
	Center    geometry.Point2D
	Radius    float64
	Color     color.RGBA
	Thickness int
}

// OverlayLabel is a recorded text label anchored at its bottom-left corner.
type OverlayLabel struct {
	Text  string
	At    geometry.Point2D
	Color color.RGBA
}

// Overlay records drawing calls so they can be inspected or replayed later.
// Draw order is kept per primitive kind; Replay draws lines, then circles,
// then labels so text stays on top.
type Overlay struct {
	Lines   []OverlayLine
	Circles []OverlayCircle
	Labels  []OverlayLabel
}

// New returns an empty overlay.
func New() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Line(a, b geometry.Point2D, col color.RGBA, thickness int) {
	o.Lines = append(o.Lines, OverlayLine{A: a, B: b, Color: col, Thickness: thickness})
}

func (o *Overlay) Circle(center geometry.Point2D, radius float64, col color.RGBA, thickness int) {
	o.Circles = append(o.Circles, OverlayCircle{Center: center, Radius: radius, Color: col, Thickness: thickness})
}

func (o *Overlay) Text(text string, at geometry.Point2D, col color.RGBA) {
	o.Labels = append(o.Labels, OverlayLabel{Text: text, At: at, Color: col})
}

// Len returns the number of recorded primitives.
func (o *Overlay) Len() int {
	return len(o.Lines) + len(o.Circles) + len(o.Labels)
}

// Reset drops all recorded primitives.
func (o *Overlay) Reset() {
	o.Lines = o.Lines[:0]
	o.Circles = o.Circles[:0]
	o.Labels = o.Labels[:0]
}

// Replay draws every recorded primitive onto dst.
func (o *Overlay) Replay(dst Canvas) {
	for _, l := range o.Lines {
		dst.Line(l.A, l.B, l.Color, l.Thickness)
	}
	for _, c := range o.Circles {
		dst.Circle(c.Center, c.Radius, c.Color, c.Thickness)
	}
	for _, t := range o.Labels {
		dst.Text(t.Text, t.At, t.Color)
	}
}

// Polyline draws a closed polygon through pts.
func Polyline(c Canvas, pts []geometry.Point2D, col color.RGBA, thickness int) {
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)], col, thickness)
	}
}

// Marker draws a small cross centered at p.
func Marker(c Canvas, p geometry.Point2D, size float64, col color.RGBA) {
	c.Line(p.Add(geometry.Point2D{X: -size}), p.Add(geometry.Point2D{X: size}), col, 1)
	c.Line(p.Add(geometry.Point2D{Y: -size}), p.Add(geometry.Point2D{Y: size}), col, 1)
}

// OrNop returns c, or Nop when c is nil.
func OrNop(c Canvas) Canvas {
	if c == nil {
		return Nop{}
	}
	return c
}
