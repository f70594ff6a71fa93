package overlay

import (
	"image/color"

	"domino-detect/internal/domino"
	"domino-detect/pkg/geometry"
)

// StatusColor returns the outline color for a stone status.
func StatusColor(s domino.Status) color.RGBA {
	switch s {
	case domino.StatusValid:
		return ColorValid
	case domino.StatusInvalid:
		return ColorInvalid
	default:
		return ColorUnmatched
	}
}

// StoneOutline returns the stone rectangle as a closed polygon.
func StoneOutline(s *domino.Stone) []geometry.Point2D {
	e := s.StoneEdges
	// edges are ordered P1-, P1+, P2-, P2+
	return []geometry.Point2D{e[0], e[1], e[3], e[2]}
}

// RenderStones draws the final result of a pass: stone outlines colored by
// status, the divider center line, pip values at the half centers, matched
// pips and one line per connection.
func RenderStones(c Canvas, stones []domino.Stone) {
	for i := range stones {
		s := &stones[i]
		Polyline(c, StoneOutline(s), StatusColor(s.Status()), 2)
		c.Line(s.CenterLinePoint1, s.CenterLinePoint2, ColorCenterLine, 2)

		for _, side := range domino.Sides {
			pips := s.PipsLeft
			if side == domino.SideRight {
				pips = s.PipsRight
			}
			for _, p := range pips {
				c.Circle(p.Center(), p.Radius, ColorPip, 2)
			}
			c.Text(s.PipValue(side).String(), s.HalfCenter(side), ColorUnmatched)
		}
	}

	for i := range stones {
		for _, conn := range stones[i].ConnectedStones {
			if conn.Other <= i || conn.Other >= len(stones) {
				continue
			}
			col := ColorInvalid
			if conn.Valid {
				col = ColorValid
			}
			a := stones[i].HalfCenter(conn.Side)
			b := stones[conn.Other].HalfCenter(conn.OtherSide)
			c.Line(a, b, col, 2)
		}
	}
}
