// Package roi projects the pip search rows of each stone half from the
// divider geometry.
//
// Every stone is classified once. The stone axis points from the divider
// towards the right half; the left half lies in the opposite direction.
// Each half gets three rows parallel to the stone axis: Row2 through the
// divider center and Row1/Row3 offset to either side.
package roi

import (
	"math"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/internal/overlay"
	"domino-detect/pkg/geometry"
)

// Classify decides the axis and angle regime of a stone.
//
// Angles inside the near-perpendicular band are snapped to exactly 90 degrees
// so every direction derived from them is a pure image axis.
func Classify(s *domino.Stone, params config.Params) domino.Orientation {
	o := domino.Orientation{Axis: domino.AxisVertical, Regime: domino.RegimeGeneral}
	if s.Width > s.Height {
		o.Axis = domino.AxisHorizontal
	}

	angle := geometry.LineAngle(s.Angle)
	if angle >= params.NearPerpendicularMin && angle <= params.NearPerpendicularMax {
		o.Regime = domino.RegimeNearAxisAligned
		angle = 90
	}
	o.Angle = angle

	// Horizontal dividers run along the angle, so the stone runs across it.
	o.StoneAxis = angle
	if o.Axis == domino.AxisHorizontal {
		o.StoneAxis = geometry.NormalizeAngle(angle + 90)
	}
	return o
}

// Projection is everything the projector derives for one stone.
type Projection struct {
	Orientation domino.Orientation
	CenterLeft  geometry.Point2D
	CenterRight geometry.Point2D
	StoneEdges  [4]geometry.Point2D
	LeftROI     domino.SideROI
	RightROI    domino.SideROI
}

// Compute projects one stone. It only reads the divider fields of s, so
// calling it twice yields identical points.
func Compute(s *domino.Stone, params config.Params) Projection {
	o := Classify(s, params)
	axis := geometry.Direction(o.StoneAxis)
	half := params.StoneLength / 2

	p := Projection{Orientation: o}
	p.CenterLeft = s.Center.Sub(axis.Scale(params.StoneLength / 4))
	p.CenterRight = s.Center.Add(axis.Scale(params.StoneLength / 4))
	p.StoneEdges = [4]geometry.Point2D{
		s.CenterLinePoint1.Sub(axis.Scale(half)),
		s.CenterLinePoint1.Add(axis.Scale(half)),
		s.CenterLinePoint2.Sub(axis.Scale(half)),
		s.CenterLinePoint2.Add(axis.Scale(half)),
	}

	for _, side := range domino.Sides {
		end := s.Center.Add(axis.Scale(side.Sign() * half))
		row2 := geometry.Segment{A: s.Center, B: end}
		roi := domino.SideROI{
			Row1: row(shift(row2, o.StoneAxis, -params.RowOffset, params), params),
			Row2: row(row2, params),
			Row3: row(shift(row2, o.StoneAxis, params.RowOffset, params), params),
		}
		if side == domino.SideLeft {
			p.LeftROI = roi
		} else {
			p.RightROI = roi
		}
	}
	return p
}

// Apply stores the projection on the stone.
func (p Projection) Apply(s *domino.Stone) {
	s.Orientation = p.Orientation
	s.CenterLeft = p.CenterLeft
	s.CenterRight = p.CenterRight
	s.StoneEdges = p.StoneEdges
	s.LeftROI = p.LeftROI
	s.RightROI = p.RightROI
}

// Project computes and stores the rows of every stone in place and draws them.
func Project(stones []domino.Stone, params config.Params, canvas overlay.Canvas) {
	canvas = overlay.OrNop(canvas)
	for i := range stones {
		p := Compute(&stones[i], params)
		p.Apply(&stones[i])
		draw(canvas, p)
	}
}

func draw(canvas overlay.Canvas, p Projection) {
	for _, roi := range []domino.SideROI{p.LeftROI, p.RightROI} {
		for _, r := range roi.Rows() {
			canvas.Line(r.Start, r.End, overlay.ColorRow, 1)
			for _, sp := range r.Samples {
				canvas.Circle(sp, 2, overlay.ColorSample, -1)
			}
		}
	}
	for _, e := range p.StoneEdges {
		overlay.Marker(canvas, e, 4, overlay.ColorEdge)
	}
}

// row turns a segment into a detection row with its sample points. Samples
// past the row end are dropped.
func row(seg geometry.Segment, params config.Params) domino.DetectionRow {
	r := domino.DetectionRow{Start: seg.A, End: seg.B}
	length := seg.Length()
	for _, d := range params.SampleOffsets {
		if d <= length {
			r.Samples = append(r.Samples, seg.PointAt(d))
		}
	}
	return r
}

func shift(seg geometry.Segment, lineAngle, d float64, params config.Params) geometry.Segment {
	return geometry.Segment{
		A: offsetPoint(seg.A, lineAngle, d, params.NearZeroTolerance),
		B: offsetPoint(seg.B, lineAngle, d, params.NearZeroTolerance),
	}
}

// offsetPoint moves p by d perpendicular to a line running at lineAngle.
// Lines within tol degrees of horizontal get a pure vertical offset on the
// same side the true perpendicular points to.
func offsetPoint(p geometry.Point2D, lineAngle, d, tol float64) geometry.Point2D {
	perp := geometry.Direction(lineAngle + 90)
	a := geometry.LineAngle(lineAngle)
	if a <= tol || a >= 180-tol {
		return p.Add(geometry.Point2D{Y: d * math.Copysign(1, perp.Y)})
	}
	return p.Add(perp.Scale(d))
}
