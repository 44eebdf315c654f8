package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contourtiles/internal/feature"
)

func TestSmoothLinePreservesEndpoints(t *testing.T) {
	line := []feature.Pt{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	out := SmoothLine(line, 2, 0.25)
	assert.Equal(t, line[0], out[0])
	assert.Equal(t, line[len(line)-1], out[len(out)-1])
	assert.Greater(t, len(out), len(line))
}

func TestSmoothRingStaysClosed(t *testing.T) {
	ring := feature.Close(feature.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	out := SmoothRing(ring, 2, 0.25)
	assert.True(t, feature.Closed(out))
}

func TestSmoothDispatchesOnKind(t *testing.T) {
	f := feature.NewLine([]feature.Pt{{0, 0}, {1, 0}, {2, 0}}, nil)
	out := Smooth(f, 0, 0)
	assert.Equal(t, feature.KindLineString, out.Kind)
	assert.NotEqual(t, f.Line, out.Line)
}
