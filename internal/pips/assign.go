// Package pips assigns detected pip circles to the detection rows of each
// stone half and reads the pip value from the per-row counts.
package pips

import (
	"math"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"
)

// pattern maps per-row counts (Row1, Row2, Row3) to a value.
var pattern = map[[3]int]domino.PipValue{
	{0, 1, 0}: 1,
	{1, 0, 1}: 2,
	{1, 1, 1}: 3,
	{2, 0, 2}: 4,
	{2, 1, 2}: 5,
	{3, 0, 3}: 6,
}

// Value returns the pip value for the given row counts, or domino.Undefined
// when the counts are not a known pattern.
func Value(r1, r2, r3 int) domino.PipValue {
	return pattern[[3]int{r1, r2, r3}]
}

// rowDistance returns the distance from the pip center to the row line, and
// false when the pip does not lie on the row.
func rowDistance(pip domino.PipCircle, row domino.DetectionRow) (float64, bool) {
	seg := row.Segment()
	center := pip.Center()

	// cheap reject before the line distance: the center must lie between
	// the row ends, with the radius as slack across the row only
	box := seg.Bounds()
	if v := seg.Vector(); math.Abs(v.X) >= math.Abs(v.Y) {
		box = box.Grow(0, pip.Radius)
	} else {
		box = box.Grow(pip.Radius, 0)
	}
	if !box.Contains(center) {
		return 0, false
	}

	d, ok := seg.LineDistance(center)
	if !ok || d >= pip.Radius {
		return 0, false
	}
	return d, true
}

// OnRow reports whether the row line passes through the pip: the pip center
// lies between the row ends within the row's bounding box grown by the radius
// across the row, and its distance
// to the row line is strictly less than the radius. Zero-length rows never
// match.
func OnRow(pip domino.PipCircle, row domino.DetectionRow) bool {
	_, ok := rowDistance(pip, row)
	return ok
}

// OnRowIndices returns the indices of the pips lying on row.
func OnRowIndices(pips []domino.PipCircle, row domino.DetectionRow) []int {
	var idx []int
	for i, p := range pips {
		if OnRow(p, row) {
			idx = append(idx, i)
		}
	}
	return idx
}

// AssignStats summarizes one assignment pass.
type AssignStats struct {
	Pips       int `json:"pips"`
	Assigned   int `json:"assigned"`   // pips on at least one row of some stone half
	Duplicates int `json:"duplicates"` // pips on more than one row of the same half
	Defined    int `json:"defined"`    // halves with a recognized value
	Undefined  int `json:"undefined"`
}

// Assign fills PipsLeft/PipsRight and PipValueLeft/PipValueRight of every
// stone in place.
//
// With the shared policy a pip touching two rows of a half counts on both;
// with the nearest policy it only counts on the closest one. Duplicates are
// reported in either case.
func Assign(stones []domino.Stone, circles []domino.PipCircle, params config.Params) AssignStats {
	stats := AssignStats{Pips: len(circles)}
	used := make([]bool, len(circles))

	for i := range stones {
		s := &stones[i]
		for _, side := range domino.Sides {
			counts, members, dups := assignSide(s.ROI(side), circles, params.PipExclusivity)
			stats.Duplicates += dups

			var matched []domino.PipCircle
			for _, m := range members {
				matched = append(matched, circles[m])
				used[m] = true
			}

			v := Value(counts[0], counts[1], counts[2])
			s.SetPips(side, matched, v)
			if v.Defined() {
				stats.Defined++
			} else {
				stats.Undefined++
			}
		}
	}

	for _, u := range used {
		if u {
			stats.Assigned++
		}
	}
	return stats
}

// assignSide counts the pips per row of one half. It returns the counts, the
// de-duplicated pip indices in input order and the number of pips that lie
// on more than one row.
func assignSide(roi domino.SideROI, circles []domino.PipCircle, policy config.PipExclusivity) (counts [3]int, members []int, dups int) {
	rows := roi.Rows()
	for i, c := range circles {
		best, bestDist, hits := -1, 0.0, 0
		for r, row := range rows {
			d, ok := rowDistance(c, row)
			if !ok {
				continue
			}
			hits++
			if policy != config.PipsNearestRow {
				counts[r]++
			}
			if best < 0 || d < bestDist {
				best, bestDist = r, d
			}
		}
		if hits == 0 {
			continue
		}
		if policy == config.PipsNearestRow {
			counts[best]++
		}
		if hits > 1 {
			dups++
		}
		members = append(members, i)
	}
	return counts, members, dups
}

