package marching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contourtiles/internal/feature"
	"contourtiles/internal/grid"
)

func TestCaseSegmentCounts(t *testing.T) {
	c := computeCell(0, 0, 1, 0, 1, 0, 0.5)
	wantLen := []int{0, 1, 1, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 0}
	for idx, want := range wantLen {
		got := caseSegments(c, idx)
		assert.Lenf(t, got, want, "case %d", idx)
	}
}

func TestTraceLinesSingleCorner(t *testing.T) {
	// Only the top-left corner is above the level (case 1): one segment
	// from the left-edge crossing to the bottom-edge crossing.
	g, err := grid.New(2, 2, []float64{1, 0, 0, 0})
	require.NoError(t, err)

	lines := TraceLines(g, []float64{0.5})
	require.Len(t, lines, 1)
	assert.Equal(t, feature.KindLineString, lines[0].Kind)
	assert.Len(t, lines[0].Line, 2)
}

func TestTracePolygonsSaddleClosesHexagon(t *testing.T) {
	// TL and BR above level, TR and BL below: the classic case-5 saddle on
	// a single-cell (2x2) grid, boundary on all four sides.
	g, err := grid.New(2, 2, []float64{1, 0, 0, 1})
	require.NoError(t, err)

	polys := TracePolygons(g, []float64{0.5})
	require.Len(t, polys, 1)
	shell := polys[0].Shell()

	want := map[[2]float64]bool{
		{1, 1}: true, {1, 0.5}: true, {0.5, 0}: true,
		{0, 0}: true, {0, 0.5}: true, {0.5, 1}: true,
	}
	assert.True(t, feature.Closed(shell))
	got := map[[2]float64]bool{}
	for _, p := range shell[:len(shell)-1] {
		got[p] = true
	}
	assert.Equal(t, want, got)
	assert.InDelta(t, 0.75, feature.Area(shell), 1e-9)
}

func TestTracePolygonsFullyInsideCellIsFullSquare(t *testing.T) {
	g, err := grid.New(2, 2, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	polys := TracePolygons(g, []float64{0.5})
	require.Len(t, polys, 1)
	assert.InDelta(t, 1.0, feature.Area(polys[0].Shell()), 1e-9)
	assert.Empty(t, polys[0].Holes())
}

func TestTracePolygonsHoleNesting(t *testing.T) {
	// A 5x5 grid shaped like a raised ring with a depressed center: the
	// outer boundary is one shell, the low center carves out a hole.
	w, h := 5, 5
	data := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 2 && y == 2 {
				data[y*w+x] = 0
			} else {
				data[y*w+x] = 10
			}
		}
	}
	g, err := grid.New(w, h, data)
	require.NoError(t, err)

	polys := TracePolygons(g, []float64{5})
	require.Len(t, polys, 1)
	assert.NotEmpty(t, polys[0].Holes())
}

func TestTracePolygonsThreeLevelNesting(t *testing.T) {
	// A caldera: a high outer rim, a low crater ring inside it, and a
	// high resurgent peak at the very center, strictly inside the
	// crater. The peak must come back as its own shell nested inside
	// the rim's hole, never as a second hole alongside the crater.
	w, h := 7, 7
	data := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-3, y-3
			radius := dx
			if dy > radius {
				radius = dy
			}
			if -dy > radius {
				radius = -dy
			}
			if -dx > radius {
				radius = -dx
			}
			if radius%2 == 0 {
				data[y*w+x] = 10
			} else {
				data[y*w+x] = 0
			}
		}
	}
	g, err := grid.New(w, h, data)
	require.NoError(t, err)

	polys := TracePolygons(g, []float64{5})
	require.Len(t, polys, 2)

	var rim, peak feature.Feature
	if len(polys[0].Holes()) > 0 {
		rim, peak = polys[0], polys[1]
	} else {
		rim, peak = polys[1], polys[0]
	}
	require.Len(t, rim.Holes(), 1)
	assert.Empty(t, peak.Holes())
}

func TestMergeSegmentsJoinsAndReverses(t *testing.T) {
	segs := []seg{
		{pt{0, 0}, pt{1, 0}},
		{pt{2, 0}, pt{1, 0}}, // shares endpoint in reverse orientation
	}
	chains := mergeSegments(segs)
	require.Len(t, chains, 1)
	assert.Len(t, chains[0], 3)
}

func TestClampTHandlesFlatEdge(t *testing.T) {
	assert.Equal(t, 0.5, clampT(1, 1, 1))
	assert.InDelta(t, 0.0, clampT(0, 0, 10), EPSILON*2)
	got := clampT(10, 0, 10)
	assert.True(t, got < 1 && math.Abs(got-1) < 1e-6)
}
