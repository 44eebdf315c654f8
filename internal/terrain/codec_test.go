package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapBoxRoundTrip(t *testing.T) {
	s := MapBox{}
	for h := -500.0; h <= 9000; h += 37.5 {
		pix := s.Encode(h)
		got := s.Decode(pix)
		assert.LessOrEqual(t, math.Abs(got-h), 0.05, "h=%v got=%v", h, got)
	}
}

func TestTerrariumRoundTrip(t *testing.T) {
	s := Terrarium{}
	for h := -500.0; h <= 9000; h += 37.5 {
		pix := s.Encode(h)
		got := s.Decode(pix)
		assert.LessOrEqual(t, math.Abs(got-h), 0.004, "h=%v got=%v", h, got)
	}
}

func TestSchemeFor(t *testing.T) {
	assert.IsType(t, MapBox{}, SchemeFor(MapBoxEncoding))
	assert.IsType(t, Terrarium{}, SchemeFor(TerrariumEncoding))
	assert.IsType(t, MapBox{}, SchemeFor("unknown"))
}
