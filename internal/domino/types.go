// Package domino holds the per-frame data model of detected domino stones.
package domino

import (
	"strconv"

	"domino-detect/pkg/geometry"
)

// PipValue is the number of pips on one stone half. Undefined means no valid
// row pattern was recognized.
type PipValue int

// Undefined marks a half whose row pattern is not in the pip table.
const Undefined PipValue = 0

// Defined reports whether v is a recognized value (1..6).
func (v PipValue) Defined() bool {
	return v >= 1 && v <= 6
}

func (v PipValue) String() string {
	if !v.Defined() {
		return "?"
	}
	return strconv.Itoa(int(v))
}

// Side selects one half of a stone relative to its divider.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both halves in processing order.
var Sides = [2]Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sign is -1 for the left half and +1 for the right half along the stone axis.
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// PipCircle is one detected pip. Produced by the pip detector, never modified.
type PipCircle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Center returns the pip center.
func (c PipCircle) Center() geometry.Point2D {
	return geometry.Point2D{X: c.X, Y: c.Y}
}

// DetectionRow is a segment along which pips are searched.
// Samples are for rendering only.
type DetectionRow struct {
	Start   geometry.Point2D   `json:"start"`
	End     geometry.Point2D   `json:"end"`
	Samples []geometry.Point2D `json:"samples,omitempty"`
}

// Segment returns the row as a geometry segment.
func (r DetectionRow) Segment() geometry.Segment {
	return geometry.Segment{A: r.Start, B: r.End}
}

// SideROI holds the three detection rows of one stone half. Row2 runs along
// the stone axis through the divider center; Row1 and Row3 are the outer rows.
type SideROI struct {
	Row1 DetectionRow `json:"row1"`
	Row2 DetectionRow `json:"row2"`
	Row3 DetectionRow `json:"row3"`
}

// Rows returns the rows in order.
func (s SideROI) Rows() [3]DetectionRow {
	return [3]DetectionRow{s.Row1, s.Row2, s.Row3}
}

// Axis tells which rectangle dimension of the divider is the long one.
type Axis int

const (
	// AxisHorizontal: Width > Height, the divider runs along Angle.
	AxisHorizontal Axis = iota
	// AxisVertical: Height >= Width, the divider runs along Angle+90.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Regime selects the formula family used for ROI projection.
type Regime int

const (
	RegimeGeneral Regime = iota
	// RegimeNearAxisAligned: the angle sits in the near-perpendicular band
	// and is snapped to exactly 90 degrees.
	RegimeNearAxisAligned
)

func (r Regime) String() string {
	if r == RegimeNearAxisAligned {
		return "near-axis-aligned"
	}
	return "general"
}

// Orientation is classified once per stone and reused by every later stage.
type Orientation struct {
	Axis   Axis    `json:"axis"`
	Regime Regime  `json:"regime"`
	Angle  float64 `json:"angle"` // effective rectangle angle after snapping
	// StoneAxis is the direction (degrees) from the divider towards the right half.
	StoneAxis float64 `json:"stone_axis"`
}

// Connection links a stone half to a half of another stone.
type Connection struct {
	Other     int     `json:"other"`      // index of the other stone in the pass
	Valid     bool    `json:"valid"`      // both halves defined and equal
	Side      Side    `json:"side"`       // half of this stone
	OtherSide Side    `json:"other_side"` // half of the other stone
	Distance  float64 `json:"distance"`   // half-center distance in pixels
	Angle     float64 `json:"angle"`      // angle between center rows in degrees
}

// Status summarizes a stone's connections.
type Status int

const (
	StatusUnmatched Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unmatched"
	}
}
