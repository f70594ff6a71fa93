// Command piptest runs only pip detection on an image and prints the circles,
// for tuning the Hough parameters without dividers in the frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/internal/image"
	"domino-detect/internal/overlay"
	"domino-detect/internal/pips"
	"domino-detect/internal/vision"
	"domino-detect/pkg/geometry"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (TIFF, PNG, or JPEG)")
	configPath := flag.String("config", "", "Params file (.json, .yaml or .yml)")
	minRadius := flag.Int("min-radius", 0, "Minimum pip radius in pixels (0 = from params)")
	maxRadius := flag.Int("max-radius", 0, "Maximum pip radius in pixels (0 = from params)")
	param2 := flag.Float64("param2", 0, "Hough accumulator threshold (0 = from params)")
	outPath := flag.String("out", "", "Write the image with detected pips drawn")
	rowY := flag.Float64("row-y", -1, "Also report pips on the horizontal row at this y")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: piptest -image <path> [-config params.yaml] [-min-radius 3] [-max-radius 15] [-param2 15] [-out pips.png] [-row-y 240]")
		os.Exit(1)
	}

	params := config.DefaultParams()
	if *configPath != "" {
		p, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load params: %v\n", err)
			os.Exit(1)
		}
		params = p
	}
	if *minRadius > 0 || *maxRadius > 0 {
		minR, maxR := params.PipMinRadius, params.PipMaxRadius
		if *minRadius > 0 {
			minR = *minRadius
		}
		if *maxRadius > 0 {
			maxR = *maxRadius
		}
		params = params.WithPipRadius(minR, maxR)
	}
	if *param2 > 0 {
		params.PipParam2 = *param2
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid params: %v\n", err)
		os.Exit(1)
	}

	frame, err := image.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s image: %dx%d pixels\n", frame.Format, frame.Width(), frame.Height())

	src, err := vision.NewSource(frame.Image, params.Preprocess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	fmt.Printf("\nDetection parameters:\n")
	fmt.Printf("  Blur: %dx%d sigma %.1f\n", params.Preprocess.BlurKernel, params.Preprocess.BlurKernel, params.Preprocess.BlurSigma)
	fmt.Printf("  Hough: dp=%.1f minDist=%.0f param1=%.0f param2=%.0f\n",
		params.PipDP, params.PipMinDist, params.PipParam1, params.PipParam2)
	fmt.Printf("  Radius: %d-%d px\n", params.PipMinRadius, params.PipMaxRadius)

	fmt.Printf("\nDetecting pips...\n")
	detector := vision.HoughPipDetector{Gray: src.Gray()}
	circles, err := detector.DetectPips(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDetected %d pips:\n", len(circles))
	fmt.Printf("%-6s %10s %10s %8s\n", "#", "X", "Y", "Radius")
	fmt.Println(strings.Repeat("-", 38))
	for i, c := range circles {
		fmt.Printf("%-6d %10.1f %10.1f %8.1f\n", i, c.X, c.Y, c.Radius)
	}

	if *rowY >= 0 {
		row := domino.DetectionRow{
			Start: geometry.NewPoint2D(0, *rowY),
			End:   geometry.NewPoint2D(float64(frame.Width()), *rowY),
		}
		on := pips.OnRowIndices(circles, row)
		fmt.Printf("\n%d pips on row y=%.0f: %v\n", len(on), *rowY, on)
	}

	if *outPath != "" {
		canvas := vision.NewMatCanvas(&src.Color)
		for _, c := range circles {
			canvas.Circle(c.Center(), c.Radius, overlay.ColorPip, 2)
		}
		if err := vision.WriteImage(*outPath, src.Color); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *outPath)
	}

	fmt.Printf("\nTotal: %d pips detected\n", len(circles))
}
