package vision

import (
	"fmt"
	"image/color"
	"math"

	"domino-detect/internal/domino"
	"domino-detect/internal/overlay"
	"domino-detect/pkg/geometry"

	"gocv.io/x/gocv"
)

// MatCanvas draws onto a gocv Mat.
type MatCanvas struct {
	Mat       *gocv.Mat
	FontScale float64
}

// NewMatCanvas returns a canvas drawing onto mat.
func NewMatCanvas(mat *gocv.Mat) *MatCanvas {
	return &MatCanvas{Mat: mat, FontScale: 0.8}
}

func (c *MatCanvas) Line(a, b geometry.Point2D, col color.RGBA, thickness int) {
	gocv.Line(c.Mat, a.ImagePoint(), b.ImagePoint(), col, thickness)
}

func (c *MatCanvas) Circle(center geometry.Point2D, radius float64, col color.RGBA, thickness int) {
	gocv.Circle(c.Mat, center.ImagePoint(), int(math.Round(radius)), col, thickness)
}

func (c *MatCanvas) Text(text string, at geometry.Point2D, col color.RGBA) {
	gocv.PutText(c.Mat, text, at.ImagePoint(), gocv.FontHersheySimplex, c.FontScale, col, 2)
}

// Render draws the debug overlay, if any, and then the final stones onto dst.
func Render(dst *gocv.Mat, stones []domino.Stone, debug *overlay.Overlay) {
	canvas := NewMatCanvas(dst)
	if debug != nil {
		debug.Replay(canvas)
	}
	overlay.RenderStones(canvas, stones)
}

// WriteImage saves mat to path; the extension selects the encoder.
func WriteImage(path string, mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("empty image")
	}
	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("failed to write image %s", path)
	}
	return nil
}
