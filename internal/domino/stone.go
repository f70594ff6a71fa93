package domino

import (
	"slices"

	"domino-detect/pkg/geometry"
)

// Stone is one detected domino stone. It is created by the divider extractor
// and filled in by the later stages of a single pass.
type Stone struct {
	// Divider geometry
	Center           geometry.Point2D `json:"center"`
	CenterLinePoint1 geometry.Point2D `json:"center_line_p1"`
	CenterLinePoint2 geometry.Point2D `json:"center_line_p2"`
	Width            float64          `json:"width"`
	Height           float64          `json:"height"`
	Angle            float64          `json:"angle"` // degrees, as reported by the contour provider

	// ROI projection
	Orientation Orientation         `json:"orientation"`
	CenterLeft  geometry.Point2D    `json:"center_left"`
	CenterRight geometry.Point2D    `json:"center_right"`
	StoneEdges  [4]geometry.Point2D `json:"stone_edges"`
	LeftROI     SideROI             `json:"left_roi"`
	RightROI    SideROI             `json:"right_roi"`

	// Pip assignment
	PipsLeft      []PipCircle `json:"pips_left,omitempty"`
	PipsRight     []PipCircle `json:"pips_right,omitempty"`
	PipValueLeft  PipValue    `json:"pip_value_left"`
	PipValueRight PipValue    `json:"pip_value_right"`

	// Matching
	ConnectedStones []Connection `json:"connected_stones,omitempty"`
}

// ROI returns the detection rows of the given half.
func (s *Stone) ROI(side Side) SideROI {
	if side == SideLeft {
		return s.LeftROI
	}
	return s.RightROI
}

// HalfCenter returns CenterLeft or CenterRight.
func (s *Stone) HalfCenter(side Side) geometry.Point2D {
	if side == SideLeft {
		return s.CenterLeft
	}
	return s.CenterRight
}

// PipValue returns the value of the given half.
func (s *Stone) PipValue(side Side) PipValue {
	if side == SideLeft {
		return s.PipValueLeft
	}
	return s.PipValueRight
}

// SetPips stores the matched pips and value of one half.
func (s *Stone) SetPips(side Side, pips []PipCircle, value PipValue) {
	if side == SideLeft {
		s.PipsLeft, s.PipValueLeft = pips, value
		return
	}
	s.PipsRight, s.PipValueRight = pips, value
}

// Status is unmatched without connections, invalid if any connection is
// invalid, and valid otherwise.
func (s *Stone) Status() Status {
	if len(s.ConnectedStones) == 0 {
		return StatusUnmatched
	}
	for _, c := range s.ConnectedStones {
		if !c.Valid {
			return StatusInvalid
		}
	}
	return StatusValid
}

// Clone returns a deep copy that shares no slices with s.
func (s Stone) Clone() Stone {
	c := s
	c.LeftROI = s.LeftROI.clone()
	c.RightROI = s.RightROI.clone()
	c.PipsLeft = slices.Clone(s.PipsLeft)
	c.PipsRight = slices.Clone(s.PipsRight)
	c.ConnectedStones = slices.Clone(s.ConnectedStones)
	return c
}

func (s SideROI) clone() SideROI {
	s.Row1.Samples = slices.Clone(s.Row1.Samples)
	s.Row2.Samples = slices.Clone(s.Row2.Samples)
	s.Row3.Samples = slices.Clone(s.Row3.Samples)
	return s
}

// CloneStones deep-copies a stone list.
func CloneStones(stones []Stone) []Stone {
	if stones == nil {
		return nil
	}
	out := make([]Stone, len(stones))
	for i := range stones {
		out[i] = stones[i].Clone()
	}
	return out
}
