package marching

import (
	"sort"

	"contourtiles/internal/feature"
)

// closeChain appends the chain's first point if the merged polyline isn't
// already closed within tolerance, and discards anything too short to
// bound an area.
func closeChain(c []pt) feature.Ring {
	if len(c) < 3 {
		return nil
	}
	r := make(feature.Ring, len(c))
	copy(r, c)
	if quantize(r[0]) != quantize(r[len(r)-1]) {
		r = append(r, r[0])
	}
	return r
}

// assemblePolygons turns merged chains into Polygon features. Rings are
// sorted by area, largest first; the largest not-yet-used ring at each
// step becomes a shell. Scanning smaller rings for that shell's holes, a
// candidate is rejected (left unused) if it falls inside a hole already
// assigned to the shell — so a ring nested inside a hole is never
// attached to that hole's shell as a second, nested hole. It is picked
// up later, once the loop reaches it, as its own shell: nesting any
// deeper than one level is represented as shell-in-hole-in-shell, never
// as a hole with holes of its own.
func assemblePolygons(chains [][]pt, level float64) []feature.Feature {
	type ring struct {
		pts  feature.Ring
		area float64
	}

	var rings []ring
	for _, c := range chains {
		r := closeChain(c)
		if len(r) < 4 {
			continue
		}
		rings = append(rings, ring{pts: r, area: feature.Area(r)})
	}
	if len(rings) == 0 {
		return nil
	}
	sort.Slice(rings, func(i, j int) bool { return rings[i].area > rings[j].area })

	used := make([]bool, len(rings))
	props := feature.Props{{Key: "level", Value: feature.Float(level)}}
	var out []feature.Feature
	for i := range rings {
		if used[i] {
			continue
		}
		used[i] = true

		var holes []feature.Ring
		for j := i + 1; j < len(rings); j++ {
			if used[j] || !feature.PointInRing(rings[j].pts[0], rings[i].pts) {
				continue
			}
			nestedInHole := false
			for _, h := range holes {
				if feature.PointInRing(rings[j].pts[0], h) {
					nestedInHole = true
					break
				}
			}
			if nestedInHole {
				continue
			}
			holes = append(holes, rings[j].pts)
			used[j] = true
		}

		out = append(out, feature.NewPolygon(rings[i].pts, holes, props))
	}
	return out
}
