// Package report provides the JSON result file of a detection run and a
// plain-text summary table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/internal/pipeline"
	"domino-detect/internal/version"
)

// FormatVersion is bumped when the file layout changes incompatibly.
const FormatVersion = 1

// File is a saved detection result (.json).
type File struct {
	Version     int       `json:"version"`
	ToolVersion string    `json:"tool_version"`
	Created     time.Time `json:"created"`

	// Image path (relative to the report file when possible)
	ImagePath string `json:"image,omitempty"`

	Params  config.Params    `json:"params"`
	Stones  []domino.Stone   `json:"stones"`
	Stats   pipeline.Stats   `json:"stats"`
	Timings pipeline.Timings `json:"timings"`
	Summary Summary          `json:"summary"`
}

// Summary counts stones by status.
type Summary struct {
	Stones        int `json:"stones"`
	Pips          int `json:"pips"`
	DefinedHalves int `json:"defined_halves"`
	Connections   int `json:"connections"`
	Valid         int `json:"valid"`
	Invalid       int `json:"invalid"`
	Unmatched     int `json:"unmatched"`
}

// Summarize counts the stones of a result. Connections are counted once per pair.
func Summarize(stones []domino.Stone, pips int) Summary {
	s := Summary{Stones: len(stones), Pips: pips}
	for i := range stones {
		st := &stones[i]
		for _, side := range domino.Sides {
			if st.PipValue(side).Defined() {
				s.DefinedHalves++
			}
		}
		for _, c := range st.ConnectedStones {
			if c.Other > i {
				s.Connections++
			}
		}
		switch st.Status() {
		case domino.StatusValid:
			s.Valid++
		case domino.StatusInvalid:
			s.Invalid++
		default:
			s.Unmatched++
		}
	}
	return s
}

// New creates a report for one pipeline result.
func New(params config.Params, res *pipeline.Result) *File {
	f := &File{
		Version:     FormatVersion,
		ToolVersion: version.Version,
		Created:     time.Now(),
		Params:      params,
	}
	if res != nil {
		f.Stones = domino.CloneStones(res.Stones)
		f.Stats = res.Stats
		f.Timings = res.Timings
		f.Summary = Summarize(res.Stones, len(res.Pips))
	}
	return f
}

// Load loads a report file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if f.Version > FormatVersion {
		return nil, fmt.Errorf("report %s has format version %d, newest supported is %d", path, f.Version, FormatVersion)
	}

	return &f, nil
}

// Save saves the report to a file.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetImage sets the image path (relative to the report).
func (f *File) SetImage(reportPath, imagePath string) {
	rel, err := filepath.Rel(filepath.Dir(reportPath), imagePath)
	if err != nil {
		f.ImagePath = imagePath
	} else {
		f.ImagePath = rel
	}
}

// GetImagePath returns the image path resolved against the report location.
func (f *File) GetImagePath(reportPath string) string {
	if f.ImagePath == "" {
		return ""
	}
	if filepath.IsAbs(f.ImagePath) {
		return f.ImagePath
	}
	return filepath.Join(filepath.Dir(reportPath), f.ImagePath)
}

// WriteTable prints one line per stone followed by the summary.
func WriteTable(w io.Writer, stones []domino.Stone, summary Summary) error {
	if _, err := fmt.Fprintf(w, "%-4s %16s %8s %-11s %5s %5s %-9s %s\n",
		"#", "Center", "Angle", "Axis", "Left", "Right", "Status", "Links"); err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("-", 76))

	for i := range stones {
		s := &stones[i]
		fmt.Fprintf(w, "%-4d %16s %8.1f %-11s %5s %5s %-9s %s\n",
			i,
			fmt.Sprintf("(%.0f,%.0f)", s.Center.X, s.Center.Y),
			s.Angle,
			s.Orientation.Axis,
			s.PipValueLeft,
			s.PipValueRight,
			s.Status(),
			links(s.ConnectedStones))
	}

	_, err := fmt.Fprintf(w, "\n%d stones, %d pips, %d/%d halves defined, %d connections (%d valid stones, %d invalid, %d unmatched)\n",
		summary.Stones, summary.Pips, summary.DefinedHalves, 2*summary.Stones,
		summary.Connections, summary.Valid, summary.Invalid, summary.Unmatched)
	return err
}

func links(conns []domino.Connection) string {
	if len(conns) == 0 {
		return "-"
	}
	parts := make([]string, len(conns))
	for i, c := range conns {
		mark := "ok"
		if !c.Valid {
			mark = "x"
		}
		parts[i] = fmt.Sprintf("%s->%d.%s(%s)", c.Side, c.Other, c.OtherSide, mark)
	}
	return strings.Join(parts, " ")
}
