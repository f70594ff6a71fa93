package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// LineAngle maps an angle in degrees into [0, 180). Directions that differ by
// 180 degrees describe the same line.
func LineAngle(deg float64) float64 {
	a := math.Mod(deg, 180)
	if a < 0 {
		a += 180
	}
	return a
}

// Direction returns the unit vector pointing at deg degrees, measured from
// the +X axis towards +Y (image coordinates, Y grows downwards).
// Multiples of 90 degrees yield exact axis vectors.
func Direction(deg float64) Point2D {
	a := NormalizeAngle(deg)
	switch a {
	case 0:
		return Point2D{X: 1}
	case 90:
		return Point2D{Y: 1}
	case 180:
		return Point2D{X: -1}
	case 270:
		return Point2D{Y: -1}
	}
	rad := DegToRad(a)
	return Point2D{X: math.Cos(rad), Y: math.Sin(rad)}
}

// AngleBetween returns the unsigned angle in degrees between the lines spanned
// by u and v, in [0, 90]. It returns false when either vector has zero length.
func AngleBetween(u, v Point2D) (float64, bool) {
	nu, nv := r2.Norm(u.Vec()), r2.Norm(v.Vec())
	if nu == 0 || nv == 0 {
		return 0, false
	}
	ratio := math.Abs(r2.Dot(u.Vec(), v.Vec())) / (nu * nv)
	// rounding can push the ratio just past 1
	ratio = math.Min(ratio, 1)
	return RadToDeg(math.Acos(ratio)), true
}
