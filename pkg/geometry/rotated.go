package geometry

// RotatedRect is a minimum-area bounding rectangle as reported by the contour
// geometry provider. Width runs along Angle, Height along Angle+90.
type RotatedRect struct {
	Center Point2D `json:"center"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Angle  float64 `json:"angle"` // degrees
}

// Corners returns the four corners rotated around the center, in the order
// (-w,-h), (+w,-h), (+w,+h), (-w,+h) in rectangle-local half extents.
func (r RotatedRect) Corners() [4]Point2D {
	u := Direction(r.Angle)      // width axis
	v := Direction(r.Angle + 90) // height axis
	hw := r.Width / 2
	hh := r.Height / 2

	at := func(sw, sh float64) Point2D {
		return r.Center.Add(u.Scale(sw * hw)).Add(v.Scale(sh * hh))
	}
	return [4]Point2D{at(-1, -1), at(1, -1), at(1, 1), at(-1, 1)}
}

// Area returns Width * Height.
func (r RotatedRect) Area() float64 {
	return r.Width * r.Height
}
