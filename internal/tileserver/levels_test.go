package tileserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLevelsSpacing(t *testing.T) {
	levels := GenerateLevels(105, 410, 100)
	assert.Equal(t, []float64{200, 300, 400}, levels)
}

func TestGenerateLevelsEmptyRange(t *testing.T) {
	assert.Nil(t, GenerateLevels(10, 5, 100))
	assert.Nil(t, GenerateLevels(0, 100, 0))
}

func TestGenerateLevelsExcludesExactUpperBound(t *testing.T) {
	levels := GenerateLevels(0, 256, 32)
	assert.Equal(t, []float64{0, 32, 64, 96, 128, 160, 192, 224}, levels)
}

func TestContourIntervalCoarsensAtLowZoom(t *testing.T) {
	assert.Greater(t, ContourInterval(2), ContourInterval(16))
}

func TestHillshadeIntervalFinesAtHighZoom(t *testing.T) {
	assert.Greater(t, HillshadeInterval(2), HillshadeInterval(16))
}
