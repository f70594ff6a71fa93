package vision

import (
	"domino-detect/internal/divider"
	"domino-detect/pkg/geometry"

	"gocv.io/x/gocv"
)

// Contour is one closed contour of the divider mask with its geometry
// computed up front, so no Mat outlives the call that found it.
type Contour struct {
	Index  int
	Parent int // index of the enclosing contour, -1 at top level
	area   float64
	rect   geometry.RotatedRect
}

// Area returns the contour area in square pixels.
func (c Contour) Area() float64 { return c.area }

// MinAreaRect returns the minimum-area rotated bounding rectangle.
func (c Contour) MinAreaRect() geometry.RotatedRect { return c.rect }

// FindContours returns every contour of a binary mask. The full tree is
// retrieved because dividers show up as holes inside the stone outline.
func FindContours(mask gocv.Mat) []Contour {
	hierarchy := gocv.NewMat()
	defer hierarchy.Close()

	contours := gocv.FindContoursWithParams(mask, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxNone)
	defer contours.Close()

	out := make([]Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		pv := contours.At(i)
		if pv.Size() < 3 {
			continue
		}
		c := Contour{
			Index:  i,
			Parent: -1,
			area:   gocv.ContourArea(pv),
			rect:   rotatedRect(gocv.MinAreaRect(pv)),
		}
		if !hierarchy.Empty() {
			// each entry is [next, previous, first child, parent]
			c.Parent = int(hierarchy.GetVeciAt(0, i)[3])
		}
		out = append(out, c)
	}
	return out
}

// rotatedRect converts the gocv rect. gocv v0.31 rounds Center, Width and
// Height to whole pixels, so divider geometry is accurate to about half a
// pixel; only Angle keeps full precision. MinAreaRect2 returns floats but
// needs a newer gocv.
func rotatedRect(r gocv.RotatedRect) geometry.RotatedRect {
	return geometry.RotatedRect{
		Center: geometry.NewPoint2D(float64(r.Center.X), float64(r.Center.Y)),
		Width:  float64(r.Width),
		Height: float64(r.Height),
		Angle:  r.Angle,
	}
}

// MaskContours provides the contours of a fixed binary mask.
type MaskContours struct {
	Mask gocv.Mat
}

// Contours implements pipeline.ContourProvider.
func (m MaskContours) Contours() ([]divider.Contour, error) {
	found := FindContours(m.Mask)
	out := make([]divider.Contour, len(found))
	for i := range found {
		out[i] = found[i]
	}
	return out, nil
}
