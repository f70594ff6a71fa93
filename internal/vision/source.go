package vision

import (
	"fmt"
	"image"

	"domino-detect/internal/config"
	"domino-detect/internal/pipeline"

	"gocv.io/x/gocv"
)

// Source owns the Mats derived from one input image for the length of a
// pass. Close it when the pass and any rendering are done.
type Source struct {
	Color gocv.Mat // BGR frame, also the render target
	pre   *Preprocessed
}

// NewSource converts img and runs the preprocessing chain on it.
func NewSource(img image.Image, pp config.PreprocessParams) (*Source, error) {
	mat, err := ImageToMat(img)
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}

	pre, err := Preprocess(mat, pp)
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("failed to preprocess image: %w", err)
	}

	return &Source{Color: mat, pre: pre}, nil
}

// Frame returns the pipeline view of the source.
func (s *Source) Frame() pipeline.Frame {
	return pipeline.Frame{
		Contours: MaskContours{Mask: s.pre.Edges},
		Pips:     HoughPipDetector{Gray: s.pre.Gray},
	}
}

// Gray returns the blurred grayscale image.
func (s *Source) Gray() gocv.Mat {
	return s.pre.Gray
}

// Close releases every Mat.
func (s *Source) Close() {
	s.pre.Close()
	s.Color.Close()
}
