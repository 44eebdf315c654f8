package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contourtiles/internal/feature"
)

func TestClipLineTrimsOutsideBox(t *testing.T) {
	b := box{0, 0, 10, 10}
	line := []feature.Pt{{-5, 5}, {5, 5}, {15, 5}}
	pieces := ClipLine(line, b)
	require.Len(t, pieces, 1)
	assert.InDelta(t, 0, pieces[0][0][0], 1e-9)
	assert.InDelta(t, 10, pieces[0][len(pieces[0])-1][0], 1e-9)
}

func TestClipPolygonEntirelyInsideIsUnchanged(t *testing.T) {
	b := box{0, 0, 10, 10}
	ring := feature.Close(feature.Ring{{1, 1}, {2, 1}, {2, 2}, {1, 2}})
	got := ClipPolygon(ring, b)
	assert.Len(t, got, len(ring))
}

func TestClipPolygonCutsCorner(t *testing.T) {
	b := box{0, 0, 10, 10}
	ring := feature.Close(feature.Ring{{-5, 5}, {5, -5}, {5, 15}})
	got := ClipPolygon(ring, b)
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p[0], -1e-9)
		assert.LessOrEqual(t, p[0], 10+1e-9)
	}
}

func TestTransformRescalesIntoExtent(t *testing.T) {
	f := feature.NewLine([]feature.Pt{{32, 32}, {288, 32}}, nil)
	out := Transform(f, 32, 256, 4096)
	require.Len(t, out, 1)
	require.Len(t, out[0].Line, 2)
	assert.InDelta(t, 0, out[0].Line[0][0], 1e-6)
	assert.InDelta(t, 4096, out[0].Line[1][0], 1e-6)
}

func TestTransformKeepsEveryLinePiece(t *testing.T) {
	// A line that leaves and re-enters the tile box must survive as two
	// separate pieces, not collapse to whichever one is longer.
	f := feature.NewLine([]feature.Pt{
		{32, 32}, {320, 32}, {320, 64}, {32, 64}, {32, 96}, {320, 96},
	}, nil)
	out := Transform(f, 32, 256, 4096)
	require.Len(t, out, 2)
	for _, piece := range out {
		assert.Equal(t, feature.KindLineString, piece.Kind)
	}
}

func TestTransformDropsPointOutsideBox(t *testing.T) {
	inside := feature.NewPoint(feature.Pt{64, 64}, nil)
	outside := feature.NewPoint(feature.Pt{-64, 64}, nil)

	gotIn := Transform(inside, 32, 256, 4096)
	require.Len(t, gotIn, 1)
	assert.Equal(t, feature.KindPoint, gotIn[0].Kind)

	gotOut := Transform(outside, 32, 256, 4096)
	assert.Empty(t, gotOut)
}
