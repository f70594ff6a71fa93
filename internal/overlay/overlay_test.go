package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domino-detect/internal/domino"
	"domino-detect/pkg/geometry"
)

func TestOverlayRecordsAndReplays(t *testing.T) {
	o := New()
	o.Line(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0), ColorRow, 1)
	o.Circle(geometry.NewPoint2D(5, 5), 3, ColorPip, 2)
	o.Text("3", geometry.NewPoint2D(1, 1), ColorUnmatched)
	require.Equal(t, 3, o.Len())

	dst := New()
	o.Replay(dst)
	assert.Equal(t, o.Lines, dst.Lines)
	assert.Equal(t, o.Circles, dst.Circles)
	assert.Equal(t, o.Labels, dst.Labels)

	o.Reset()
	assert.Zero(t, o.Len())
	assert.Equal(t, 3, dst.Len())
}

func TestPolylineClosesShape(t *testing.T) {
	o := New()
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	Polyline(o, pts, ColorEdge, 1)
	require.Len(t, o.Lines, 3)
	assert.Equal(t, pts[2], o.Lines[2].A)
	assert.Equal(t, pts[0], o.Lines[2].B)
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, Nop{}, OrNop(nil))
	o := New()
	assert.Same(t, o, OrNop(o))
}

func TestRenderStonesDrawsEachConnectionOnce(t *testing.T) {
	stones := []domino.Stone{
		{
			CenterLeft:    geometry.NewPoint2D(0, 0),
			CenterRight:   geometry.NewPoint2D(50, 0),
			PipValueLeft:  2,
			PipValueRight: 3,
			PipsRight:     []domino.PipCircle{{X: 50, Y: 0, Radius: 4}},
			ConnectedStones: []domino.Connection{
				{Other: 1, Valid: true, Side: domino.SideRight, OtherSide: domino.SideLeft},
			},
		},
		{
			CenterLeft:   geometry.NewPoint2D(150, 0),
			CenterRight:  geometry.NewPoint2D(200, 0),
			PipValueLeft: 3,
			ConnectedStones: []domino.Connection{
				{Other: 0, Valid: true, Side: domino.SideLeft, OtherSide: domino.SideRight},
			},
		},
	}

	o := New()
	RenderStones(o, stones)

	// 4 outline edges + 1 center line per stone, plus one connection
	require.Len(t, o.Lines, 11)
	conn := o.Lines[10]
	assert.Equal(t, ColorValid, conn.Color)
	assert.Equal(t, geometry.NewPoint2D(50, 0), conn.A)
	assert.Equal(t, geometry.NewPoint2D(150, 0), conn.B)

	assert.Len(t, o.Circles, 1)
	require.Len(t, o.Labels, 4)
	assert.Equal(t, "2", o.Labels[0].Text)
	assert.Equal(t, "3", o.Labels[1].Text)
	assert.Equal(t, "?", o.Labels[3].Text)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorValid, StatusColor(domino.StatusValid))
	assert.Equal(t, ColorInvalid, StatusColor(domino.StatusInvalid))
	assert.Equal(t, ColorUnmatched, StatusColor(domino.StatusUnmatched))
}
