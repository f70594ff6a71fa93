package pips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domino-detect/internal/config"
	"domino-detect/internal/domino"
	"domino-detect/internal/roi"
	"domino-detect/pkg/geometry"
)

func row(x1, y1, x2, y2 float64) domino.DetectionRow {
	return domino.DetectionRow{Start: geometry.NewPoint2D(x1, y1), End: geometry.NewPoint2D(x2, y2)}
}

func pip(x, y, r float64) domino.PipCircle {
	return domino.PipCircle{X: x, Y: y, Radius: r}
}

// projected returns one horizontal-divider stone centered at (100, 200).
// With default params the right half rows are x=130 (Row1), x=100 (Row2)
// and x=70 (Row3), running from y=200 to y=300.
func projected(params config.Params) []domino.Stone {
	stones := []domino.Stone{{Center: geometry.NewPoint2D(100, 200), Width: 120, Height: 20}}
	roi.Project(stones, params, nil)
	return stones
}

func TestValueTable(t *testing.T) {
	want := map[[3]int]domino.PipValue{
		{0, 1, 0}: 1, {1, 0, 1}: 2, {1, 1, 1}: 3,
		{2, 0, 2}: 4, {2, 1, 2}: 5, {3, 0, 3}: 6,
	}
	defined := 0
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			for c := 0; c <= 4; c++ {
				v := Value(a, b, c)
				if w, ok := want[[3]int{a, b, c}]; ok {
					assert.Equal(t, w, v, "%d%d%d", a, b, c)
					defined++
				} else {
					assert.Equal(t, domino.Undefined, v, "%d%d%d", a, b, c)
				}
			}
		}
	}
	assert.Equal(t, 6, defined)

	assert.Equal(t, domino.Undefined, Value(0, 0, 0))
	assert.Equal(t, domino.Undefined, Value(2, 2, 2))
	assert.Equal(t, domino.Undefined, Value(1, 2, 1))
}

func TestOnRow(t *testing.T) {
	vertical := row(100, 200, 100, 300)
	diagonal := row(0, 0, 100, 100)

	tests := []struct {
		name string
		pip  domino.PipCircle
		row  domino.DetectionRow
		want bool
	}{
		{"centered on axis-aligned row", pip(100, 250, 5), vertical, true},
		{"inside radius", pip(104, 250, 5), vertical, true},
		{"exactly at radius", pip(105, 250, 5), vertical, false},
		{"outside radius", pip(110, 250, 5), vertical, false},
		{"past row end", pip(100, 320, 5), vertical, false},
		{"overlapping row end", pip(100, 303, 5), vertical, false},
		{"at row end", pip(100, 300, 5), vertical, true},
		{"on diagonal row", pip(50, 52, 3), diagonal, true},
		{"beside diagonal row", pip(50, 60, 3), diagonal, false},
		{"zero length row", pip(10, 10, 5), row(10, 10, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnRow(tt.pip, tt.row))
		})
	}
}

func TestOnRowIgnoresNeighbourPastRowEnd(t *testing.T) {
	params := config.DefaultParams()
	stones := projected(params)

	// the right half center row ends at y=300; a stone laid end to end
	// would have its first pip centered just beyond that
	neighbour := []domino.PipCircle{pip(100, 304, 6)}
	Assign(stones, neighbour, params)
	assert.Empty(t, stones[0].PipsRight)
	assert.Equal(t, domino.Undefined, stones[0].PipValueRight)

	horizontal := row(0, 50, 100, 50)
	assert.True(t, OnRow(pip(50, 54, 5), horizontal))
	assert.False(t, OnRow(pip(-3, 50, 5), horizontal))
}

func TestOnRowIndices(t *testing.T) {
	pips := []domino.PipCircle{pip(100, 210, 4), pip(200, 210, 4), pip(100, 290, 4)}
	assert.Equal(t, []int{0, 2}, OnRowIndices(pips, row(100, 200, 100, 300)))
	assert.Empty(t, OnRowIndices(nil, row(100, 200, 100, 300)))
}

func TestAssignValues(t *testing.T) {
	params := config.DefaultParams()
	stones := projected(params)

	circles := []domino.PipCircle{
		// right half: five
		pip(130, 225, 5), pip(130, 285, 5), pip(100, 255, 5), pip(70, 225, 5), pip(70, 285, 5),
		// left half: two
		pip(130, 125, 5), pip(70, 175, 5),
		// nowhere
		pip(500, 500, 5),
	}
	stats := Assign(stones, circles, params)

	s := stones[0]
	assert.Equal(t, domino.PipValue(5), s.PipValueRight)
	assert.Equal(t, domino.PipValue(2), s.PipValueLeft)
	assert.Len(t, s.PipsRight, 5)
	assert.Equal(t, []domino.PipCircle{circles[5], circles[6]}, s.PipsLeft)
	assert.Equal(t, AssignStats{Pips: 8, Assigned: 7, Defined: 2}, stats)
}

func TestAssignNoPips(t *testing.T) {
	params := config.DefaultParams()
	stones := projected(params)

	stats := Assign(stones, nil, params)
	assert.Equal(t, domino.Undefined, stones[0].PipValueLeft)
	assert.Equal(t, domino.Undefined, stones[0].PipValueRight)
	assert.Empty(t, stones[0].PipsLeft)
	assert.Equal(t, 2, stats.Undefined)
}

func TestAssignExclusivityPolicy(t *testing.T) {
	// touches Row1 (distance 20) and Row2 (distance 10)
	wide := []domino.PipCircle{pip(110, 250, 25)}

	shared := config.DefaultParams()
	stones := projected(shared)
	stats := Assign(stones, wide, shared)
	assert.Equal(t, domino.Undefined, stones[0].PipValueRight)
	assert.Equal(t, 1, stats.Duplicates)
	require.Len(t, stones[0].PipsRight, 1)

	nearest := shared.WithExclusivity(config.PipsNearestRow)
	stones = projected(nearest)
	stats = Assign(stones, wide, nearest)
	assert.Equal(t, domino.PipValue(1), stones[0].PipValueRight)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Len(t, stones[0].PipsRight, 1)
}

func TestAssignIsRepeatable(t *testing.T) {
	params := config.DefaultParams()
	stones := projected(params)
	circles := []domino.PipCircle{pip(100, 255, 5)}

	Assign(stones, circles, params)
	first := domino.CloneStones(stones)
	Assign(stones, circles, params)
	assert.Equal(t, first, stones)
}
