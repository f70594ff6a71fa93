package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsAreValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative pip radius", func(p *Params) { p.PipMinRadius = -1 }},
		{"inverted pip radius", func(p *Params) { p.PipMinRadius, p.PipMaxRadius = 10, 5 }},
		{"zero stone length", func(p *Params) { p.StoneLength = 0 }},
		{"negative row offset", func(p *Params) { p.RowOffset = -30 }},
		{"negative area", func(p *Params) { p.MinDividerArea = -1 }},
		{"inverted band", func(p *Params) { p.NearPerpendicularMin, p.NearPerpendicularMax = 91, 85 }},
		{"parallel overlaps perpendicular", func(p *Params) { p.ParallelMaxAngle = 86 }},
		{"unknown exclusivity", func(p *Params) { p.PipExclusivity = "sometimes" }},
		{"even blur kernel", func(p *Params) { p.Preprocess.BlurKernel = 4 }},
		{"zero match distance", func(p *Params) { p.MatchMaxDistance = 0 }},
		{"too many samples", func(p *Params) { p.SampleOffsets = []float64{1, 2, 3, 4} }},
		{"NaN stone length", func(p *Params) { p.StoneLength = math.NaN() }},
		{"NaN row offset", func(p *Params) { p.RowOffset = math.NaN() }},
		{"NaN match distance", func(p *Params) { p.MatchMaxDistance = math.NaN() }},
		{"infinite row offset", func(p *Params) { p.RowOffset = math.Inf(1) }},
		{"infinite match distance", func(p *Params) { p.MatchMaxDistance = math.Inf(1) }},
		{"NaN perpendicular band", func(p *Params) { p.NearPerpendicularMax = math.NaN() }},
		{"NaN sample offset", func(p *Params) { p.SampleOffsets = []float64{25, math.NaN()} }},
		{"infinite canny threshold", func(p *Params) { p.Preprocess.CannyHigh = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams))
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	p := DefaultParams()
	p.StoneLength = -1
	p.RowOffset = 0
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stone_length")
	assert.Contains(t, err.Error(), "row_offset")
}

func TestBuildersReturnCopies(t *testing.T) {
	base := DefaultParams()
	p := base.WithStoneGeometry(150, 20).WithMatchDistance(120).WithPipRadius(6, 12).WithExclusivity(PipsNearestRow)

	assert.Equal(t, 150.0, p.StoneLength)
	assert.Equal(t, 20.0, p.RowOffset)
	assert.Equal(t, 120.0, p.MatchMaxDistance)
	assert.Equal(t, 12.0, p.PipMinDist)
	assert.Equal(t, PipsNearestRow, p.PipExclusivity)
	assert.Equal(t, 200.0, base.StoneLength)
	assert.Equal(t, 10.0, base.WithPipRadius(2, 4).PipMinDist)
}

func TestLoadJSONKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stone_length": 180, "preprocess": {"canny_high": 150}}`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 180.0, p.StoneLength)
	assert.Equal(t, 30.0, p.RowOffset)
	assert.Equal(t, 150.0, p.Preprocess.CannyHigh)
	assert.Equal(t, 7, p.Preprocess.BlurKernel)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	doc := "row_offset: 25\npip_exclusivity: nearest\nsample_offsets: [20, 50]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.RowOffset)
	assert.Equal(t, PipsNearestRow, p.PipExclusivity)
	assert.Equal(t, []float64{20, 50}, p.SampleOffsets)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("pip_min_radius: -3\n"), 0o644))
	_, err := Load(bad)
	assert.ErrorIs(t, err, ErrInvalidParams)

	nonFinite := filepath.Join(dir, "nan.yaml")
	require.NoError(t, os.WriteFile(nonFinite, []byte("stone_length: .nan\nrow_offset: .inf\n"), 0o644))
	_, err = Load(nonFinite)
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Contains(t, err.Error(), "stone_length")
	assert.Contains(t, err.Error(), "row_offset")

	txt := filepath.Join(dir, "params.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = Load(txt)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	want := DefaultParams().WithStoneGeometry(220, 32)
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
