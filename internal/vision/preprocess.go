package vision

import (
	"fmt"
	"image"

	"domino-detect/internal/config"

	"gocv.io/x/gocv"
)

// Preprocessed holds the two images the pipeline needs from one frame.
type Preprocessed struct {
	Gray  gocv.Mat // blurred grayscale, input of the pip detector
	Edges gocv.Mat // dilated Canny edges, input of the contour finder
}

// Close releases both Mats.
func (p *Preprocessed) Close() {
	p.Gray.Close()
	p.Edges.Close()
}

// Preprocess runs gray -> Gaussian blur -> Canny -> dilate on a BGR frame.
func Preprocess(src gocv.Mat, pp config.PreprocessParams) (*Preprocessed, error) {
	if src.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if src.Channels() == 1 {
		src.CopyTo(&gray)
	} else {
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	}

	out := &Preprocessed{Gray: gocv.NewMat(), Edges: gocv.NewMat()}

	// Step 1: blur away sensor noise and table texture
	k := image.Pt(pp.BlurKernel, pp.BlurKernel)
	gocv.GaussianBlur(gray, &out.Gray, k, pp.BlurSigma, pp.BlurSigma, gocv.BorderDefault)

	// Step 2: edges of stones, dividers and pips
	gocv.Canny(out.Gray, &out.Edges, float32(pp.CannyLow), float32(pp.CannyHigh))

	// Step 3: close gaps in the divider outlines
	if pp.DilateIterations > 0 {
		kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(pp.DilateKernel, pp.DilateKernel))
		defer kernel.Close()
		for i := 0; i < pp.DilateIterations; i++ {
			gocv.Dilate(out.Edges, &out.Edges, kernel)
		}
	}

	return out, nil
}
