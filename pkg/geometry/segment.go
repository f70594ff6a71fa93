package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is a line segment from A to B.
type Segment struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
}

// Vector returns B - A.
func (s Segment) Vector() Point2D {
	return s.B.Sub(s.A)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Bounds returns the axis-aligned bounding box of the two endpoints.
func (s Segment) Bounds() Rect {
	return BoundingBox(s.A, s.B)
}

// LineDistance returns the perpendicular distance from p to the infinite line
// through the segment: |(A - p) x (B - A)| / |B - A|.
// It returns false for a zero-length segment.
func (s Segment) LineDistance(p Point2D) (float64, bool) {
	b := s.Vector().Vec()
	n := r2.Norm(b)
	if n == 0 {
		return 0, false
	}
	return math.Abs(r2.Cross(r2.Sub(s.A.Vec(), p.Vec()), b)) / n, true
}

// PointAt returns the point dist along the segment direction, measured from A.
// Points past B are extrapolated.
func (s Segment) PointAt(dist float64) Point2D {
	l := s.Length()
	if l == 0 {
		return s.A
	}
	return s.A.Add(s.Vector().Scale(dist / l))
}
