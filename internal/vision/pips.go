package vision

import (
	"fmt"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"

	"gocv.io/x/gocv"
)

// HoughPipDetector finds pips as circles in a blurred grayscale image.
type HoughPipDetector struct {
	Gray gocv.Mat
}

// DetectPips implements pipeline.PipDetector.
func (d HoughPipDetector) DetectPips(params config.Params) ([]domino.PipCircle, error) {
	if d.Gray.Empty() {
		return nil, fmt.Errorf("empty image")
	}
	return DetectPips(d.Gray, params.PipDP, params.PipMinDist, params.PipParam1, params.PipParam2,
		params.PipMinRadius, params.PipMaxRadius), nil
}

// DetectPips runs the Hough gradient circle transform on a grayscale image.
// param1 is the upper Canny threshold, param2 the accumulator threshold.
func DetectPips(gray gocv.Mat, dp, minDist, param1, param2 float64, minRadius, maxRadius int) []domino.PipCircle {
	circles := gocv.NewMat()
	defer circles.Close()

	gocv.HoughCirclesWithParams(gray, &circles, gocv.HoughGradient,
		dp, minDist, param1, param2, minRadius, maxRadius)

	if circles.Empty() || circles.Cols() == 0 {
		return nil
	}

	pips := make([]domino.PipCircle, circles.Cols())
	for i := range pips {
		pips[i] = domino.PipCircle{
			X:      float64(circles.GetFloatAt(0, i*3)),
			Y:      float64(circles.GetFloatAt(0, i*3+1)),
			Radius: float64(circles.GetFloatAt(0, i*3+2)),
		}
	}
	return pips
}
