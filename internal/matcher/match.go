// Package matcher pairs adjacent stones and checks that touching halves show
// the same pip value.
package matcher

import (
	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/pkg/geometry"
)

// Candidate is a pair of stones whose closest halves are near enough to touch.
type Candidate struct {
	A, B         int
	SideA, SideB domino.Side
	Distance     float64
}

// MatchStats summarizes one matching pass.
type MatchStats struct {
	Pairs         int `json:"pairs"`          // unordered stone pairs examined
	Candidates    int `json:"candidates"`     // pairs passing the distance test
	RejectedAngle int `json:"rejected_angle"` // candidates dropped by the angle test
	Connections   int `json:"connections"`
	Valid         int `json:"valid"`
	Invalid       int `json:"invalid"`
}

// Candidates returns every stone pair whose closest half-center distance is
// below MatchMaxDistance and strictly smaller than the other three
// half-center distances of the pair. Ties yield no candidate.
func Candidates(stones []domino.Stone, params config.Params) []Candidate {
	var out []Candidate
	for i := range stones {
		for j := i + 1; j < len(stones); j++ {
			if c, ok := closestHalves(&stones[i], &stones[j]); ok && c.Distance < params.MatchMaxDistance {
				c.A, c.B = i, j
				out = append(out, c)
			}
		}
	}
	return out
}

func closestHalves(a, b *domino.Stone) (Candidate, bool) {
	var best Candidate
	unique := false
	first := true
	for _, sa := range domino.Sides {
		for _, sb := range domino.Sides {
			d := a.HalfCenter(sa).Distance(b.HalfCenter(sb))
			switch {
			case first || d < best.Distance:
				best = Candidate{SideA: sa, SideB: sb, Distance: d}
				unique = true
				first = false
			case d == best.Distance:
				unique = false
			}
		}
	}
	return best, unique
}

// Aligned reports whether two stones lie end to end or at a right angle,
// judged by the angle between their center rows. It returns the angle in
// degrees; stones with a zero-length center row are never aligned.
func Aligned(a, b *domino.Stone, params config.Params) (float64, bool) {
	phi, ok := geometry.AngleBetween(a.RightROI.Row2.Segment().Vector(), b.RightROI.Row2.Segment().Vector())
	if !ok {
		return 0, false
	}
	parallel := phi <= params.ParallelMaxAngle
	perpendicular := phi >= params.NearPerpendicularMin && phi <= params.NearPerpendicularMax
	return phi, parallel || perpendicular
}

// Match records a connection on both stones of every accepted pair. Any
// previous connections are dropped first. A connection is valid when both
// touching halves have a defined and equal pip value.
func Match(stones []domino.Stone, params config.Params) MatchStats {
	for i := range stones {
		stones[i].ConnectedStones = nil
	}

	n := len(stones)
	stats := MatchStats{Pairs: n * (n - 1) / 2}

	cands := Candidates(stones, params)
	stats.Candidates = len(cands)

	for _, c := range cands {
		a, b := &stones[c.A], &stones[c.B]
		phi, ok := Aligned(a, b, params)
		if !ok {
			stats.RejectedAngle++
			continue
		}

		va, vb := a.PipValue(c.SideA), b.PipValue(c.SideB)
		valid := va.Defined() && va == vb

		a.ConnectedStones = append(a.ConnectedStones, domino.Connection{
			Other: c.B, Valid: valid, Side: c.SideA, OtherSide: c.SideB, Distance: c.Distance, Angle: phi,
		})
		b.ConnectedStones = append(b.ConnectedStones, domino.Connection{
			Other: c.A, Valid: valid, Side: c.SideB, OtherSide: c.SideA, Distance: c.Distance, Angle: phi,
		})

		stats.Connections++
		if valid {
			stats.Valid++
		} else {
			stats.Invalid++
		}
	}
	return stats
}
