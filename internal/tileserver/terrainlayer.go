package tileserver

import (
	"contourtiles/internal/feature"
	"contourtiles/internal/grid"
)

// TerrainFeatures samples bg's elevation on a stride-px grid spanning the
// tile's non-halo region, both edges included (so the last row and column
// of samples fall on the first halo pixel past the tile edge), and emits
// one Point feature per sample, carrying
// the raw elevation as a property. Unlike the contour and hillshade
// layers, nothing here is traced: it's a passthrough of the source
// values for callers that want the numbers rather than a derived shape.
func TerrainFeatures(bg *grid.BufferedGrid, stride int) []feature.Feature {
	if stride <= 0 {
		stride = TerrainSampleStride
	}
	size := bg.TileSize()
	var out []feature.Feature
	for y := 0; y <= size; y += stride {
		for x := 0; x <= size; x += stride {
			v := bg.At(bg.BufferPx+x, bg.BufferPx+y)
			props := feature.Props{{Key: "elevation", Value: feature.Float(v)}}
			out = append(out, feature.NewPoint(feature.Pt{float64(x + bg.BufferPx), float64(y + bg.BufferPx)}, props))
		}
	}
	return out
}
