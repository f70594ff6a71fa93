package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every validation failure.
var ErrInvalidParams = errors.New("invalid parameters")

// Validate checks every field and returns all problems joined, each wrapping
// ErrInvalidParams. A nil result means the params are safe to run with.
func (p Params) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...))
	}

	// NaN compares false against every bound, so the range checks below
	// only hold for finite numbers.
	for _, f := range p.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			fail("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if p.MinDividerArea < 0 {
		fail("min_divider_area must not be negative, got %v", p.MinDividerArea)
	}
	if p.MinDividerSide < 0 {
		fail("min_divider_side must not be negative, got %v", p.MinDividerSide)
	}
	if p.DividerAspectRatio < 1 {
		fail("divider_aspect_ratio must be at least 1, got %v", p.DividerAspectRatio)
	}
	if p.StoneLength <= 0 {
		fail("stone_length must be positive, got %v", p.StoneLength)
	}
	if p.RowOffset <= 0 {
		fail("row_offset must be positive, got %v", p.RowOffset)
	}
	for i, s := range p.SampleOffsets {
		if s < 0 {
			fail("sample_offsets[%d] must not be negative, got %v", i, s)
		}
	}
	if len(p.SampleOffsets) > 3 {
		fail("at most 3 sample_offsets, got %d", len(p.SampleOffsets))
	}

	if p.NearPerpendicularMin < 0 || p.NearPerpendicularMax > 180 || p.NearPerpendicularMin > p.NearPerpendicularMax {
		fail("near-perpendicular band [%v, %v] must be ordered within [0, 180]",
			p.NearPerpendicularMin, p.NearPerpendicularMax)
	}
	if p.NearZeroTolerance < 0 || p.NearZeroTolerance >= 45 {
		fail("near_zero_tolerance must be in [0, 45), got %v", p.NearZeroTolerance)
	}
	if p.ParallelMaxAngle < 0 || p.ParallelMaxAngle >= p.NearPerpendicularMin {
		fail("parallel_max_angle must be in [0, near_perpendicular_min), got %v", p.ParallelMaxAngle)
	}

	if p.PipDP <= 0 {
		fail("pip_dp must be positive, got %v", p.PipDP)
	}
	if p.PipMinDist <= 0 {
		fail("pip_min_dist must be positive, got %v", p.PipMinDist)
	}
	if p.PipParam1 <= 0 || p.PipParam2 <= 0 {
		fail("pip_param1 and pip_param2 must be positive, got %v and %v", p.PipParam1, p.PipParam2)
	}
	if p.PipMinRadius < 0 || p.PipMaxRadius < 0 {
		fail("pip radius range must not be negative, got min=%d max=%d", p.PipMinRadius, p.PipMaxRadius)
	} else if p.PipMaxRadius < p.PipMinRadius {
		fail("pip_max_radius %d is below pip_min_radius %d", p.PipMaxRadius, p.PipMinRadius)
	}
	switch p.PipExclusivity {
	case PipsShared, PipsNearestRow:
	default:
		fail("pip_exclusivity must be %q or %q, got %q", PipsShared, PipsNearestRow, p.PipExclusivity)
	}

	if p.MatchMaxDistance <= 0 {
		fail("match_max_distance must be positive, got %v", p.MatchMaxDistance)
	}

	pp := p.Preprocess
	if pp.BlurKernel < 1 || pp.BlurKernel%2 == 0 {
		fail("preprocess.blur_kernel must be a positive odd number, got %d", pp.BlurKernel)
	}
	if pp.BlurSigma < 0 {
		fail("preprocess.blur_sigma must not be negative, got %v", pp.BlurSigma)
	}
	if pp.CannyLow < 0 || pp.CannyHigh < pp.CannyLow {
		fail("preprocess canny thresholds must satisfy 0 <= low <= high, got %v and %v", pp.CannyLow, pp.CannyHigh)
	}
	if pp.DilateKernel < 1 || pp.DilateIterations < 0 {
		fail("preprocess dilation needs kernel >= 1 and iterations >= 0, got %d and %d",
			pp.DilateKernel, pp.DilateIterations)
	}

	return errors.Join(errs...)
}

type floatField struct {
	name  string
	value float64
}

func (p Params) floatFields() []floatField {
	fields := []floatField{
		{"min_divider_area", p.MinDividerArea},
		{"min_divider_side", p.MinDividerSide},
		{"divider_aspect_ratio", p.DividerAspectRatio},
		{"stone_length", p.StoneLength},
		{"row_offset", p.RowOffset},
		{"near_perpendicular_min", p.NearPerpendicularMin},
		{"near_perpendicular_max", p.NearPerpendicularMax},
		{"near_zero_tolerance", p.NearZeroTolerance},
		{"parallel_max_angle", p.ParallelMaxAngle},
		{"pip_dp", p.PipDP},
		{"pip_min_dist", p.PipMinDist},
		{"pip_param1", p.PipParam1},
		{"pip_param2", p.PipParam2},
		{"match_max_distance", p.MatchMaxDistance},
		{"preprocess.blur_sigma", p.Preprocess.BlurSigma},
		{"preprocess.canny_low", p.Preprocess.CannyLow},
		{"preprocess.canny_high", p.Preprocess.CannyHigh},
	}
	for i, s := range p.SampleOffsets {
		fields = append(fields, floatField{fmt.Sprintf("sample_offsets[%d]", i), s})
	}
	return fields
}
