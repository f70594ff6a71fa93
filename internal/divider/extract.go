// Package divider turns contours of the bars that split each stone into two
// halves into stone records.
package divider

import (
	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/internal/overlay"
	"domino-detect/pkg/geometry"
)

// Contour is a closed contour as seen by the extractor.
type Contour interface {
	Area() float64
	MinAreaRect() geometry.RotatedRect
}

// ExtractStats counts what happened to each contour.
type ExtractStats struct {
	Contours   int `json:"contours"`
	TooSmall   int `json:"too_small"`
	Degenerate int `json:"degenerate"`
	NotBar     int `json:"not_bar"` // failed the aspect ratio test
	Dividers   int `json:"dividers"`
}

// Extract keeps the contours that look like divider bars and creates one
// stone per bar. Rejected contours are counted, never reported as errors.
func Extract(contours []Contour, params config.Params, canvas overlay.Canvas) ([]domino.Stone, ExtractStats) {
	canvas = overlay.OrNop(canvas)
	stats := ExtractStats{Contours: len(contours)}
	var stones []domino.Stone

	for _, c := range contours {
		if c.Area() < params.MinDividerArea {
			stats.TooSmall++
			continue
		}

		rect := c.MinAreaRect()
		stone, ok, degenerate := fromRect(rect, params)
		if degenerate {
			stats.Degenerate++
			continue
		}
		if !ok {
			stats.NotBar++
			continue
		}

		corners := rect.Corners()
		overlay.Polyline(canvas, corners[:], overlay.ColorDivider, 2)
		canvas.Line(stone.CenterLinePoint1, stone.CenterLinePoint2, overlay.ColorCenterLine, 2)

		stones = append(stones, stone)
	}

	stats.Dividers = len(stones)
	return stones, stats
}

// fromRect builds a stone from a divider rectangle. It reports degenerate for
// rectangles with a side below MinDividerSide and !ok for rectangles that are
// not elongated enough to be a bar.
func fromRect(rect geometry.RotatedRect, params config.Params) (stone domino.Stone, ok, degenerate bool) {
	w, h := rect.Width, rect.Height
	if w < params.MinDividerSide || h < params.MinDividerSide {
		return domino.Stone{}, false, true
	}

	c := rect.Corners()
	var p1, p2 geometry.Point2D
	if w > h {
		if params.DividerAspectRatio*h > w {
			return domino.Stone{}, false, false
		}
		// short edges are c0-c3 and c1-c2
		p1 = c[0].Midpoint(c[3])
		p2 = c[1].Midpoint(c[2])
	} else {
		if params.DividerAspectRatio*w > h {
			return domino.Stone{}, false, false
		}
		// short edges are c0-c1 and c3-c2
		p1 = c[0].Midpoint(c[1])
		p2 = c[3].Midpoint(c[2])
	}

	return domino.Stone{
		Center:           rect.Center,
		CenterLinePoint1: p1,
		CenterLinePoint2: p2,
		Width:            w,
		Height:           h,
		Angle:            rect.Angle,
	}, true, false
}
