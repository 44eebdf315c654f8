// Package clip maps traced geometry from buffered-grid space into MVT
// tile-extent space and clips it to the tile's box.
package clip

import "contourtiles/internal/feature"

// Transform rescales every coordinate of f from buffered-grid pixel space
// (width/height = tileSizePx + 2*bufferPx) into [0,extent] tile-local
// space, then clips the result to that box. A line that crosses the box
// boundary more than once yields one feature per surviving piece, so the
// caller must be prepared for zero, one, or many features back from a
// single input.
func Transform(f feature.Feature, bufferPx, tileSizePx, extent int) []feature.Feature {
	scale := float64(extent) / float64(tileSizePx)
	project := func(p feature.Pt) feature.Pt {
		return feature.Pt{(p[0] - float64(bufferPx)) * scale, (p[1] - float64(bufferPx)) * scale}
	}

	b := box{0, 0, float64(extent), float64(extent)}

	switch f.Kind {
	case feature.KindLineString:
		projected := projectLine(f.Line, project)
		pieces := ClipLine(projected, b)
		out := make([]feature.Feature, len(pieces))
		for i, p := range pieces {
			out[i] = feature.NewLine(p, f.Props)
		}
		return out
	case feature.KindPolygon:
		rings := make([]feature.Ring, len(f.Rings))
		for i, r := range f.Rings {
			rings[i] = projectRing(r, project)
		}
		clipped := clipRings(rings, b)
		if len(clipped) == 0 {
			return nil
		}
		return []feature.Feature{feature.NewPolygon(clipped[0], clipped[1:], f.Props)}
	case feature.KindPoint:
		p := project(f.Point)
		if p[0] < b.xmin || p[0] > b.xmax || p[1] < b.ymin || p[1] > b.ymax {
			return nil
		}
		return []feature.Feature{feature.NewPoint(p, f.Props)}
	}
	return nil
}

func projectLine(line []feature.Pt, project func(feature.Pt) feature.Pt) []feature.Pt {
	out := make([]feature.Pt, len(line))
	for i, p := range line {
		out[i] = project(p)
	}
	return out
}

func projectRing(r feature.Ring, project func(feature.Pt) feature.Pt) feature.Ring {
	out := make(feature.Ring, len(r))
	for i, p := range r {
		out[i] = project(p)
	}
	return out
}

func clipRings(rings []feature.Ring, b box) []feature.Ring {
	if len(rings) == 0 {
		return nil
	}
	shell := ClipPolygon(rings[0], b)
	if len(shell) == 0 {
		return nil
	}
	out := []feature.Ring{shell}
	for _, hole := range rings[1:] {
		if clipped := ClipPolygon(hole, b); len(clipped) > 0 {
			out = append(out, clipped)
		}
	}
	return out
}

type box struct {
	xmin, ymin, xmax, ymax float64
}
