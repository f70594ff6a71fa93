package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionAxisAligned(t *testing.T) {
	assert.Equal(t, Point2D{X: 1}, Direction(0))
	assert.Equal(t, Point2D{Y: 1}, Direction(90))
	assert.Equal(t, Point2D{X: -1}, Direction(180))
	assert.Equal(t, Point2D{Y: -1}, Direction(-90))
	assert.Equal(t, Point2D{X: 1}, Direction(360))

	d := Direction(45)
	assert.InDelta(t, math.Sqrt2/2, d.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, d.Y, 1e-12)
}

func TestLineAngle(t *testing.T) {
	assert.InDelta(t, 10.0, LineAngle(190), 1e-12)
	assert.InDelta(t, 170.0, LineAngle(-10), 1e-12)
	assert.InDelta(t, 0.0, LineAngle(180), 1e-12)
}

func TestAngleBetween(t *testing.T) {
	phi, ok := AngleBetween(Point2D{X: 1}, Point2D{X: -3})
	require.True(t, ok)
	assert.InDelta(t, 0.0, phi, 1e-9)

	phi, ok = AngleBetween(Point2D{X: 1}, Point2D{Y: 2})
	require.True(t, ok)
	assert.InDelta(t, 90.0, phi, 1e-9)

	phi, ok = AngleBetween(Point2D{X: 1, Y: 1}, Point2D{X: 1})
	require.True(t, ok)
	assert.InDelta(t, 45.0, phi, 1e-9)

	_, ok = AngleBetween(Point2D{}, Point2D{X: 1})
	assert.False(t, ok)
}

func TestSegmentLineDistance(t *testing.T) {
	s := Segment{A: Point2D{X: 0, Y: 0}, B: Point2D{X: 10, Y: 0}}

	d, ok := s.LineDistance(Point2D{X: 5, Y: 3})
	require.True(t, ok)
	assert.InDelta(t, 3.0, d, 1e-12)

	d, ok = s.LineDistance(Point2D{X: 5, Y: -4})
	require.True(t, ok)
	assert.InDelta(t, 4.0, d, 1e-12)

	_, ok = Segment{A: Point2D{X: 1, Y: 1}, B: Point2D{X: 1, Y: 1}}.LineDistance(Point2D{})
	assert.False(t, ok)
}

func TestSegmentPointAt(t *testing.T) {
	s := Segment{A: Point2D{X: 10, Y: 10}, B: Point2D{X: 10, Y: 110}}
	assert.True(t, s.PointAt(25).ApproxEqual(Point2D{X: 10, Y: 35}, 1e-12))
	assert.True(t, s.PointAt(0).ApproxEqual(s.A, 1e-12))
}

func TestRotatedRectCorners(t *testing.T) {
	r := RotatedRect{Center: Point2D{X: 100, Y: 50}, Width: 40, Height: 10, Angle: 0}
	c := r.Corners()
	assert.Equal(t, Point2D{X: 80, Y: 45}, c[0])
	assert.Equal(t, Point2D{X: 120, Y: 45}, c[1])
	assert.Equal(t, Point2D{X: 120, Y: 55}, c[2])
	assert.Equal(t, Point2D{X: 80, Y: 55}, c[3])

	// a quarter turn swaps the extents
	r.Angle = 90
	c = r.Corners()
	assert.True(t, c[0].ApproxEqual(Point2D{X: 105, Y: 30}, 1e-9))
	assert.True(t, c[2].ApproxEqual(Point2D{X: 95, Y: 70}, 1e-9))
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox(Point2D{X: 5, Y: 1}, Point2D{X: -1, Y: 4}, Point2D{X: 2, Y: -2})
	assert.Equal(t, Rect{X: -1, Y: -2, Width: 6, Height: 6}, b)
	assert.True(t, b.Contains(Point2D{X: 5, Y: 4}))
	assert.False(t, b.Contains(Point2D{X: 5.1, Y: 4}))
	assert.True(t, b.Grow(1, 1).Contains(Point2D{X: 5.5, Y: 4.5}))
	assert.False(t, b.Grow(0, 1).Contains(Point2D{X: 5.5, Y: 4}))
	assert.Equal(t, Rect{X: -1, Y: -4, Width: 6, Height: 10}, b.Grow(0, 2))
}

func TestPointHelpers(t *testing.T) {
	p := Point2D{X: 3, Y: 4}
	assert.InDelta(t, 5.0, p.Norm(), 1e-12)
	assert.InDelta(t, 5.0, p.Distance(Point2D{}), 1e-12)
	assert.Equal(t, Point2D{X: 1.5, Y: 2}, p.Midpoint(Point2D{}))
	assert.Equal(t, 3, Point2D{X: 2.5, Y: -0.4}.ImagePoint().X)
}
