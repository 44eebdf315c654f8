package tileserver

import (
	"math"

	"contourtiles/internal/feature"
	"contourtiles/internal/grid"
	"contourtiles/internal/hillshade"
	"contourtiles/internal/marching"
	"contourtiles/internal/smooth"
)

// HillshadeFeatures computes a Lambertian hillshade over g and traces it
// into isoband polygons split into two branches around a baseline
// luminance: highlight bands traced directly on the shaded grid, and
// shadow bands traced on its inversion so both branches can reuse the
// same increasing-level isoband tracer. Every polygon carries a "shade"
// property normalized to [0,1], with 0.5 exactly at the baseline.
func HillshadeFeatures(g *grid.Grid, z, tileSize int) ([]feature.Feature, error) {
	res := hillshade.Resolution(z, tileSize)
	shaded, err := hillshade.Compute(g, hillshade.Params{
		CellSize:    res,
		AltitudeDeg: DefaultSunAltitude,
		AzimuthDeg:  DefaultSunAzimuth,
	})
	if err != nil {
		return nil, err
	}

	interval := HillshadeInterval(z)
	baseline := hillshadeBaseline(DefaultSunAltitude)

	var out []feature.Feature

	highlightLevels := GenerateLevels(baseline, MaxLuminance, interval)
	for _, f := range marching.TracePolygons(shaded, highlightLevels) {
		smoothed := smooth.Smooth(f, 0, 0)
		out = append(out, tagShade(smoothed, shadeHighlight(levelOf(smoothed), baseline)))
	}

	inverted := grid.Invert(shaded)
	shadowLevels := GenerateLevels(MaxLuminance-baseline, MaxLuminance, interval)
	for _, f := range marching.TracePolygons(inverted, shadowLevels) {
		origLevel := MaxLuminance - levelOf(f)
		smoothed := smooth.Smooth(withLevel(f, origLevel), 0, 0)
		out = append(out, tagShade(smoothed, shadeShadow(origLevel, baseline)))
	}

	return out, nil
}

// hillshadeBaseline returns the luminance a flat surface facing the sun
// at altitudeDeg would produce: the midpoint between the highlight and
// shadow branches.
func hillshadeBaseline(altitudeDeg float64) float64 {
	zenith := (90 - altitudeDeg) * math.Pi / 180
	return math.Round(math.Cos(zenith) * 255)
}

// shadeHighlight maps a highlight-branch level (level >= baseline) into
// [0.5,1].
func shadeHighlight(level, baseline float64) float64 {
	span := MaxLuminance - baseline
	if span <= 0 {
		return 0.5
	}
	return 0.5 + 0.5*(level-baseline)/span
}

// shadeShadow maps a shadow-branch level (level <= baseline) into [0,0.5].
func shadeShadow(level, baseline float64) float64 {
	if baseline <= 0 {
		return 0.5
	}
	return 0.5 * level / baseline
}

func levelOf(f feature.Feature) float64 {
	v, _ := f.Props.Get("level")
	return v.Value().(float64)
}

func withLevel(f feature.Feature, level float64) feature.Feature {
	f.Props = f.Props.With("level", feature.Float(level))
	return f
}

func tagShade(f feature.Feature, shade float64) feature.Feature {
	f.Props = f.Props.With("shade", feature.Float(shade))
	return f
}
