// Package config holds the tunable parameters of a detection pass.
package config

// PipExclusivity controls whether a pip may be counted on more than one row
// of the same stone half.
type PipExclusivity string

const (
	// PipsShared counts a pip on every row it touches.
	PipsShared PipExclusivity = "shared"
	// PipsNearestRow counts a pip only on the closest row it touches.
	PipsNearestRow PipExclusivity = "nearest"
)

// Params holds every tunable value of the pipeline.
// See DefaultParams for the calibrated defaults.
type Params struct {
	// Divider extraction
	MinDividerArea     float64 `json:"min_divider_area" yaml:"min_divider_area"`         // contour area threshold (px²)
	MinDividerSide     float64 `json:"min_divider_side" yaml:"min_divider_side"`         // shorter side below this is degenerate
	DividerAspectRatio float64 `json:"divider_aspect_ratio" yaml:"divider_aspect_ratio"` // long side must exceed ratio × short side

	// ROI projection
	StoneLength   float64   `json:"stone_length" yaml:"stone_length"`     // assumed full stone length (px)
	RowOffset     float64   `json:"row_offset" yaml:"row_offset"`         // spacing between detection rows (px)
	SampleOffsets []float64 `json:"sample_offsets" yaml:"sample_offsets"` // sample points along each row (px)

	// Angle bands (degrees). The near-perpendicular band is shared by ROI
	// projection and the matcher's angle confirmation.
	NearPerpendicularMin float64 `json:"near_perpendicular_min" yaml:"near_perpendicular_min"`
	NearPerpendicularMax float64 `json:"near_perpendicular_max" yaml:"near_perpendicular_max"`
	NearZeroTolerance    float64 `json:"near_zero_tolerance" yaml:"near_zero_tolerance"`
	ParallelMaxAngle     float64 `json:"parallel_max_angle" yaml:"parallel_max_angle"`

	// Pip detection (Hough gradient)
	PipDP          float64        `json:"pip_dp" yaml:"pip_dp"`
	PipMinDist     float64        `json:"pip_min_dist" yaml:"pip_min_dist"`
	PipParam1      float64        `json:"pip_param1" yaml:"pip_param1"` // Canny high threshold
	PipParam2      float64        `json:"pip_param2" yaml:"pip_param2"` // accumulator threshold
	PipMinRadius   int            `json:"pip_min_radius" yaml:"pip_min_radius"`
	PipMaxRadius   int            `json:"pip_max_radius" yaml:"pip_max_radius"`
	PipExclusivity PipExclusivity `json:"pip_exclusivity" yaml:"pip_exclusivity"`

	// Stone matching
	MatchMaxDistance float64 `json:"match_max_distance" yaml:"match_max_distance"` // strict upper bound (px)

	Preprocess PreprocessParams `json:"preprocess" yaml:"preprocess"`
}

// PreprocessParams configures the gray -> blur -> Canny -> dilate chain that
// produces the binary divider mask.
type PreprocessParams struct {
	BlurKernel       int     `json:"blur_kernel" yaml:"blur_kernel"` // odd
	BlurSigma        float64 `json:"blur_sigma" yaml:"blur_sigma"`
	CannyLow         float64 `json:"canny_low" yaml:"canny_low"`
	CannyHigh        float64 `json:"canny_high" yaml:"canny_high"`
	DilateKernel     int     `json:"dilate_kernel" yaml:"dilate_kernel"`
	DilateIterations int     `json:"dilate_iterations" yaml:"dilate_iterations"`
}

// DefaultParams returns default detection parameters.
// These are tuned for a camera roughly 50cm above a table of standard stones.
func DefaultParams() Params {
	return Params{
		MinDividerArea:     700,
		MinDividerSide:     1,
		DividerAspectRatio: 3,

		StoneLength:   200,
		RowOffset:     30,
		SampleOffsets: []float64{25, 55, 85},

		NearPerpendicularMin: 85,
		NearPerpendicularMax: 91,
		NearZeroTolerance:    5,
		ParallelMaxAngle:     5,

		PipDP:          1,
		PipMinDist:     10,
		PipParam1:      50,
		PipParam2:      15,
		PipMinRadius:   3,
		PipMaxRadius:   15,
		PipExclusivity: PipsShared,

		MatchMaxDistance: 190,

		Preprocess: PreprocessParams{
			BlurKernel:       7,
			BlurSigma:        1,
			CannyLow:         90,
			CannyHigh:        120,
			DilateKernel:     5,
			DilateIterations: 1,
		},
	}
}

// WithStoneGeometry returns a copy of params with a new stone length and row offset.
func (p Params) WithStoneGeometry(stoneLength, rowOffset float64) Params {
	p.StoneLength = stoneLength
	p.RowOffset = rowOffset
	return p
}

// WithMinDividerArea returns a copy of params with a new contour area threshold.
func (p Params) WithMinDividerArea(area float64) Params {
	p.MinDividerArea = area
	return p
}

// WithPipRadius returns a copy of params with a new pip radius range.
// The minimum distance between pip centers follows the minimum radius.
func (p Params) WithPipRadius(minRadius, maxRadius int) Params {
	p.PipMinRadius = minRadius
	p.PipMaxRadius = maxRadius
	p.PipMinDist = float64(max(10, minRadius*2))
	return p
}

// WithMatchDistance returns a copy of params with a new adjacency threshold.
func (p Params) WithMatchDistance(d float64) Params {
	p.MatchMaxDistance = d
	return p
}

// WithExclusivity returns a copy of params with a new pip counting policy.
func (p Params) WithExclusivity(e PipExclusivity) Params {
	p.PipExclusivity = e
	return p
}
