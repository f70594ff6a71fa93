package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"domino-detect/internal/config"
	"domino-detect/internal/image"
	"domino-detect/internal/overlay"
	"domino-detect/internal/pipeline"
	"domino-detect/internal/report"
	"domino-detect/internal/vision"
)

type detectOptions struct {
	image         string
	out           string
	json          string
	debug         bool
	exclusivePips bool

	stoneLength float64
	rowOffset   float64
	minArea     float64
	matchDist   float64
	pipMinR     int
	pipMaxR     int
}

func detectCmd(root *rootOptions) *cobra.Command {
	return newDetectCmd(root, &detectOptions{})
}

func newDetectCmd(root *rootOptions, opts *detectOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Run one detection pass over an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(root.config)
			if err != nil {
				return err
			}
			params = opts.apply(cmd, params)
			if err := params.Validate(); err != nil {
				return err
			}
			return runDetect(cmd, root, opts, params)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.image, "image", "i", "", "input image (TIFF, PNG or JPEG)")
	f.StringVarP(&opts.out, "out", "o", "", "write an annotated image to this path")
	f.StringVar(&opts.json, "json", "", "write a JSON report to this path")
	f.BoolVar(&opts.debug, "debug", false, "also draw divider outlines and detection rows on --out")
	f.BoolVar(&opts.exclusivePips, "exclusive-pips", false, "count each pip only on its nearest row")
	f.Float64Var(&opts.stoneLength, "stone-length", 0, "stone length in pixels")
	f.Float64Var(&opts.rowOffset, "row-offset", 0, "spacing between detection rows in pixels")
	f.Float64Var(&opts.minArea, "min-area", 0, "minimum divider contour area")
	f.Float64Var(&opts.matchDist, "match-distance", 0, "maximum half-center distance of touching stones")
	f.IntVar(&opts.pipMinR, "pip-min-radius", 0, "minimum pip radius in pixels")
	f.IntVar(&opts.pipMaxR, "pip-max-radius", 0, "maximum pip radius in pixels")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

// apply overrides params with the flags given on the command line.
func (o *detectOptions) apply(cmd *cobra.Command, p config.Params) config.Params {
	f := cmd.Flags()
	if f.Changed("stone-length") || f.Changed("row-offset") {
		length, offset := p.StoneLength, p.RowOffset
		if f.Changed("stone-length") {
			length = o.stoneLength
		}
		if f.Changed("row-offset") {
			offset = o.rowOffset
		}
		p = p.WithStoneGeometry(length, offset)
	}
	if f.Changed("min-area") {
		p = p.WithMinDividerArea(o.minArea)
	}
	if f.Changed("match-distance") {
		p = p.WithMatchDistance(o.matchDist)
	}
	if f.Changed("pip-min-radius") || f.Changed("pip-max-radius") {
		minR, maxR := p.PipMinRadius, p.PipMaxRadius
		if f.Changed("pip-min-radius") {
			minR = o.pipMinR
		}
		if f.Changed("pip-max-radius") {
			maxR = o.pipMaxR
		}
		p = p.WithPipRadius(minR, maxR)
	}
	if o.exclusivePips {
		p = p.WithExclusivity(config.PipsNearestRow)
	}
	return p
}

func runDetect(cmd *cobra.Command, root *rootOptions, opts *detectOptions, params config.Params) error {
	logger := newLogger(cmd.ErrOrStderr(), root.logFormat, root.verbose)

	frame, err := image.Load(opts.image)
	if err != nil {
		return err
	}
	logger.Info("image loaded", "path", frame.Path, "format", frame.Format,
		"width", frame.Width(), "height", frame.Height())

	src, err := vision.NewSource(frame.Image, params.Preprocess)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	var debug *overlay.Overlay
	if opts.debug {
		debug = overlay.New()
		runOpts = append(runOpts, pipeline.WithCanvas(debug))
	}

	res, err := pipeline.Run(ctx, src.Frame(), params, runOpts...)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	summary := report.Summarize(res.Stones, len(res.Pips))
	if err := report.WriteTable(cmd.OutOrStdout(), res.Stones, summary); err != nil {
		return err
	}

	if opts.json != "" {
		rep := report.New(params, res)
		abs, err := filepath.Abs(opts.image)
		if err != nil {
			abs = opts.image
		}
		rep.SetImage(opts.json, abs)
		if err := rep.Save(opts.json); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("report saved", "path", opts.json)
	}

	if opts.out != "" {
		vision.Render(&src.Color, res.Stones, debug)
		if err := vision.WriteImage(opts.out, src.Color); err != nil {
			return err
		}
		logger.Info("annotated image saved", "path", opts.out)
	}

	return nil
}
