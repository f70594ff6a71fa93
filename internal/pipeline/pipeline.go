// Package pipeline runs one detection pass over a frame: divider extraction,
// ROI projection, pip detection, pip assignment and stone matching.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"domino-detect/internal/config"
	"domino-detect/internal/divider"
	"domino-detect/internal/domino"
	"domino-detect/internal/matcher"
	"domino-detect/internal/overlay"
	"domino-detect/internal/pips"
	"domino-detect/internal/roi"
)

// ContourProvider supplies the closed contours of the binary divider mask.
type ContourProvider interface {
	Contours() ([]divider.Contour, error)
}

// PipDetector finds pip circles in the frame.
type PipDetector interface {
	DetectPips(params config.Params) ([]domino.PipCircle, error)
}

// Frame is one immutable input image as seen by the pipeline.
type Frame struct {
	Contours ContourProvider
	Pips     PipDetector
}

// ErrIncompleteFrame is returned when a frame lacks a provider.
var ErrIncompleteFrame = errors.New("frame needs a contour provider and a pip detector")

// Stats collects the per-stage counters of a pass.
type Stats struct {
	Extract divider.ExtractStats `json:"extract"`
	Assign  pips.AssignStats     `json:"assign"`
	Match   matcher.MatchStats   `json:"match"`
}

// Timings records how long each stage took.
type Timings struct {
	Extract time.Duration `json:"extract"`
	Project time.Duration `json:"project"`
	Detect  time.Duration `json:"detect"`
	Assign  time.Duration `json:"assign"`
	Match   time.Duration `json:"match"`
	Total   time.Duration `json:"total"`
}

// Result is the output of one pass. It shares no memory with the pass and
// belongs to the caller.
type Result struct {
	Stones  []domino.Stone     `json:"stones"`
	Pips    []domino.PipCircle `json:"pips"`
	Stats   Stats              `json:"stats"`
	Timings Timings            `json:"timings"`
}

type runner struct {
	logger *slog.Logger
	canvas overlay.Canvas
}

// Option configures a pass.
type Option func(*runner)

// WithLogger sets the logger for stage summaries. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCanvas sets the debug canvas the extractor and projector draw on.
func WithCanvas(c overlay.Canvas) Option {
	return func(r *runner) {
		r.canvas = overlay.OrNop(c)
	}
}

// Run performs one full pass over frame. Params are validated before any
// stage runs, and ctx is checked between stages.
func Run(ctx context.Context, frame Frame, params config.Params, opts ...Option) (*Result, error) {
	r := &runner{
		logger: slog.New(slog.DiscardHandler),
		canvas: overlay.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if frame.Contours == nil || frame.Pips == nil {
		return nil, ErrIncompleteFrame
	}

	var (
		res   Result
		start = time.Now()
		mark  = start
	)
	lap := func() time.Duration {
		now := time.Now()
		d := now.Sub(mark)
		mark = now
		return d
	}

	// Step 1: dividers
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	contours, err := frame.Contours.Contours()
	if err != nil {
		return nil, fmt.Errorf("failed to find contours: %w", err)
	}
	stones, extractStats := divider.Extract(contours, params, r.canvas)
	res.Stats.Extract = extractStats
	res.Timings.Extract = lap()
	r.logger.Info("dividers extracted",
		"contours", extractStats.Contours,
		"dividers", extractStats.Dividers,
		"too_small", extractStats.TooSmall,
		"degenerate", extractStats.Degenerate,
		"not_bar", extractStats.NotBar)

	// Step 2: detection rows
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	roi.Project(stones, params, r.canvas)
	res.Timings.Project = lap()
	r.logger.Debug("rows projected", "stones", len(stones))

	// Step 3: pips
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	circles, err := frame.Pips.DetectPips(params)
	if err != nil {
		return nil, fmt.Errorf("failed to detect pips: %w", err)
	}
	res.Timings.Detect = lap()
	r.logger.Info("pips detected", "pips", len(circles))

	// Step 4: pip values
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assignStats := pips.Assign(stones, circles, params)
	res.Stats.Assign = assignStats
	res.Timings.Assign = lap()
	if assignStats.Duplicates > 0 {
		r.logger.Warn("pips counted on more than one row",
			"duplicates", assignStats.Duplicates,
			"policy", params.PipExclusivity)
	}
	r.logger.Info("pips assigned",
		"assigned", assignStats.Assigned,
		"defined", assignStats.Defined,
		"undefined", assignStats.Undefined)

	// Step 5: connections
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matchStats := matcher.Match(stones, params)
	res.Stats.Match = matchStats
	res.Timings.Match = lap()
	r.logger.Info("stones matched",
		"candidates", matchStats.Candidates,
		"rejected_angle", matchStats.RejectedAngle,
		"valid", matchStats.Valid,
		"invalid", matchStats.Invalid)

	res.Stones = domino.CloneStones(stones)
	res.Pips = slices.Clone(circles)
	res.Timings.Total = time.Since(start)
	return &res, nil
}
