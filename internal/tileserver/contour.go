package tileserver

import (
	"math"

	"contourtiles/internal/feature"
	"contourtiles/internal/grid"
	"contourtiles/internal/marching"
	"contourtiles/internal/smooth"
)

// ContourFeatures traces isolines over g across the fixed elevation range
// at the zoom-appropriate interval, smooths each line with Chaikin
// corner-cutting, and tags the lines on every fifth level as index
// contours.
func ContourFeatures(g *grid.Grid, z int) []feature.Feature {
	interval := ContourInterval(z)
	levels := GenerateLevels(MinElevation, MaxElevation, interval)
	lines := marching.TraceLines(g, levels)
	out := make([]feature.Feature, len(lines))
	for i, l := range lines {
		smoothed := smooth.Smooth(l, 0, 0)
		level, _ := smoothed.Props.Get("level")
		smoothed.Props = smoothed.Props.With("index", feature.Bool(isIndexLevel(level.Value().(float64), interval)))
		out[i] = smoothed
	}
	return out
}

// isIndexLevel reports whether level falls on a bolder index contour,
// drawn every fifth regular interval.
func isIndexLevel(level, interval float64) bool {
	if interval <= 0 {
		return false
	}
	band := 5 * interval
	m := math.Mod(level, band)
	if m < 0 {
		m += band
	}
	return m < 1e-6 || band-m < 1e-6
}
