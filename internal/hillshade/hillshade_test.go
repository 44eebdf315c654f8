package hillshade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contourtiles/internal/grid"
)

func TestFlatGridHillshade(t *testing.T) {
	g := grid.NewFilled(10, 10, 0)
	out, err := Compute(g, Params{CellSize: 1.0, AltitudeDeg: 45, AzimuthDeg: 315})
	require.NoError(t, err)

	want := math.Round(255 * math.Cos(math.Pi/4))
	assert.Equal(t, 180.0, want)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.InDelta(t, want, math.Round(out.At(x, y)), 0)
		}
	}
}

func TestOutputAlwaysInRange(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i * 137 % 500)
	}
	g, err := grid.New(4, 4, data)
	require.NoError(t, err)

	out, err := Compute(g, Params{CellSize: 1, AltitudeDeg: 45, AzimuthDeg: 315})
	require.NoError(t, err)
	for _, v := range out.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 255.0)
	}
}

func TestValidateRejectsOutOfRangeAngles(t *testing.T) {
	_, err := Compute(grid.NewFilled(2, 2, 0), Params{CellSize: 1, AltitudeDeg: 200, AzimuthDeg: 0})
	assert.Error(t, err)

	_, err = Compute(grid.NewFilled(2, 2, 0), Params{CellSize: 1, AltitudeDeg: 0, AzimuthDeg: 400})
	assert.Error(t, err)
}

func TestResolutionLaw(t *testing.T) {
	for z := 0; z < 20; z++ {
		a := Resolution(z, 256)
		b := Resolution(z+1, 256)
		assert.InEpsilon(t, a/2, b, 1e-12)
	}
}
