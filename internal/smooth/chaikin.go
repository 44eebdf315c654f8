// Package smooth applies Chaikin corner-cutting to traced contour and
// isoband geometry so tile output isn't a jagged grid-aligned polyline.
package smooth

import "contourtiles/internal/feature"

const (
	defaultIterations = 2
	defaultFactor     = 0.25
)

// SmoothLine runs Chaikin corner-cutting on an open polyline, iterations
// times, preserving both endpoints.
func SmoothLine(line []feature.Pt, iterations int, factor float64) []feature.Pt {
	if len(line) < 3 {
		return line
	}
	cur := line
	for i := 0; i < iterations; i++ {
		cur = chaikinOpenPass(cur, factor)
	}
	return cur
}

func chaikinOpenPass(pts []feature.Pt, factor float64) []feature.Pt {
	out := make([]feature.Pt, 0, 2*len(pts))
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		q := lerp(a, b, factor)
		r := lerp(a, b, 1-factor)
		out = append(out, q, r)
	}
	out = append(out, pts[len(pts)-1])
	return out
}

// SmoothRing runs Chaikin corner-cutting on a closed ring. The ring's
// duplicated closing point is dropped before smoothing the unique
// vertices with modular wraparound, and reattached afterward.
func SmoothRing(ring feature.Ring, iterations int, factor float64) feature.Ring {
	if !feature.Closed(ring) || len(ring) < 4 {
		return ring
	}
	uniq := ring[:len(ring)-1]
	cur := uniq
	for i := 0; i < iterations; i++ {
		cur = chaikinClosedPass(cur, factor)
	}
	return feature.Close(cur)
}

func chaikinClosedPass(pts []feature.Pt, factor float64) []feature.Pt {
	n := len(pts)
	out := make([]feature.Pt, 0, 2*n)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		out = append(out, lerp(a, b, factor), lerp(a, b, 1-factor))
	}
	return out
}

func lerp(a, b feature.Pt, t float64) feature.Pt {
	return feature.Pt{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// Smooth dispatches on f's kind, smoothing every line or every ring
// (shell and holes) with the given iteration count and cut factor; a
// non-positive iterations or factor falls back to the package default.
func Smooth(f feature.Feature, iterations int, factor float64) feature.Feature {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	if factor <= 0 {
		factor = defaultFactor
	}
	out := f.Clone()
	switch out.Kind {
	case feature.KindLineString:
		out.Line = SmoothLine(out.Line, iterations, factor)
	case feature.KindPolygon:
		for i, r := range out.Rings {
			out.Rings[i] = SmoothRing(r, iterations, factor)
		}
	}
	return out
}
