// Package marching implements the Marching Squares contour/isoband tracer:
// segment collection per cell, chain merging into polylines, and (for
// polygon mode) ring assembly with hole detection.
package marching

import (
	"math"

	"contourtiles/internal/feature"
	"contourtiles/internal/grid"
)

// EPSILON is the numeric tolerance used throughout the tracer: coordinate
// equality, interpolation clamping and quantization all derive from it.
const EPSILON = 1e-10

type pt = feature.Pt

type seg struct {
	a, b pt
}

// clampT computes the edge-crossing fraction, clamped strictly inside
// (0,1) so two crossings on neighboring cells can never land on exactly
// the same float and still fail to merge due to clamp asymmetry.
func clampT(level, v1, v2 float64) float64 {
	if math.Abs(v2-v1) < EPSILON {
		return 0.5
	}
	t := (level - v1) / (v2 - v1)
	if t < EPSILON {
		t = EPSILON
	}
	if t > 1-EPSILON {
		t = 1 - EPSILON
	}
	return t
}

// cellPts holds the four corners and four edge-crossing points of one
// grid cell at integer offset (x,y), already positioned in grid space.
type cellPts struct {
	tl, tr, br, bl pt
	tm, bm, lm, rm pt
}

func computeCell(x, y int, vtl, vtr, vbr, vbl, level float64) cellPts {
	fx, fy := float64(x), float64(y)
	return cellPts{
		tl: pt{fx, fy}, tr: pt{fx + 1, fy}, br: pt{fx + 1, fy + 1}, bl: pt{fx, fy + 1},
		tm: pt{fx + clampT(level, vtl, vtr), fy},
		bm: pt{fx + clampT(level, vbl, vbr), fy + 1},
		lm: pt{fx, fy + clampT(level, vtl, vbl)},
		rm: pt{fx + 1, fy + clampT(level, vtr, vbr)},
	}
}

// caseIndex classifies a cell's four corners into [0,15]: TL=1, TR=2,
// BR=4, BL=8, bit set when the corner value is >= level.
func caseIndex(vtl, vtr, vbr, vbl, level float64) int {
	idx := 0
	if vtl >= level {
		idx |= 1
	}
	if vtr >= level {
		idx |= 2
	}
	if vbr >= level {
		idx |= 4
	}
	if vbl >= level {
		idx |= 8
	}
	return idx
}

// caseSegments returns the interior segment(s) for a cell per the standard
// 16-case Marching Squares table (Appendix A). Saddle cases 5 and 10
// always emit two disjoint segments; no adaptive disambiguation by cell
// center value is attempted, matching the documented reference behavior.
func caseSegments(c cellPts, idx int) []seg {
	switch idx {
	case 1:
		return []seg{{c.lm, c.bm}}
	case 2:
		return []seg{{c.bm, c.rm}}
	case 3:
		return []seg{{c.lm, c.rm}}
	case 4:
		return []seg{{c.rm, c.tm}}
	case 5:
		return []seg{{c.lm, c.tm}, {c.rm, c.bm}}
	case 6:
		return []seg{{c.bm, c.tm}}
	case 7:
		return []seg{{c.lm, c.tm}}
	case 8:
		return []seg{{c.tm, c.lm}}
	case 9:
		return []seg{{c.tm, c.bm}}
	case 10:
		return []seg{{c.bm, c.lm}, {c.tm, c.rm}}
	case 11:
		return []seg{{c.tm, c.rm}}
	case 12:
		return []seg{{c.rm, c.lm}}
	case 13:
		return []seg{{c.rm, c.bm}}
	case 14:
		return []seg{{c.bm, c.lm}}
	default: // 0, 15
		return nil
	}
}

// altSaddleSegments returns the complementary diagonal pairing for a
// saddle case: case 5's table entry isolates the TL/BR corners, case 10's
// isolates TR/BL. A cell on all four grid edges at once (the degenerate
// single-cell grid) has no neighbor to resolve the saddle by continuation,
// so closing it with the case's own pairing produces two separate
// triangles touching only at the cell center instead of one ring; using
// the other saddle's pairing there closes a single hexagonal ring instead,
// which is what collectSegments does (see boundary handling below).
func altSaddleSegments(c cellPts, idx int) []seg {
	switch idx {
	case 5:
		return []seg{{c.lm, c.bm}, {c.tm, c.rm}}
	case 10:
		return []seg{{c.lm, c.tm}, {c.rm, c.bm}}
	default:
		return nil
	}
}

// boundarySegments implements Appendix A's boundary-closing rule: for each
// cell edge that lies on the grid's outermost row/column, close off the
// portion of that edge between whichever corner(s) are >= level and the
// crossing (or, if both corners are inside, the whole edge — no crossing
// exists there).
func boundarySegments(c cellPts, insideTL, insideTR, insideBR, insideBL bool, onTop, onBottom, onLeft, onRight bool) []seg {
	var out []seg
	if onTop {
		switch {
		case insideTL && insideTR:
			out = append(out, seg{c.tl, c.tr})
		case insideTL:
			out = append(out, seg{c.tl, c.tm})
		case insideTR:
			out = append(out, seg{c.tm, c.tr})
		}
	}
	if onBottom {
		switch {
		case insideBL && insideBR:
			out = append(out, seg{c.bl, c.br})
		case insideBR:
			out = append(out, seg{c.br, c.bm})
		case insideBL:
			out = append(out, seg{c.bm, c.bl})
		}
	}
	if onLeft {
		switch {
		case insideTL && insideBL:
			out = append(out, seg{c.tl, c.bl})
		case insideTL:
			out = append(out, seg{c.tl, c.lm})
		case insideBL:
			out = append(out, seg{c.lm, c.bl})
		}
	}
	if onRight {
		switch {
		case insideTR && insideBR:
			out = append(out, seg{c.tr, c.br})
		case insideBR:
			out = append(out, seg{c.br, c.rm})
		case insideTR:
			out = append(out, seg{c.rm, c.tr})
		}
	}
	return out
}

// collectSegments walks every cell of g and returns the raw (unmerged)
// segment soup for one level. polygonMode also emits the boundary-closing
// segments of §4.4.1.
func collectSegments(g *grid.Grid, level float64, polygonMode bool) []seg {
	w, h := g.Width(), g.Height()
	var segs []seg
	for y := 0; y < h-1; y++ {
		onTop := y == 0
		onBottom := y == h-2
		for x := 0; x < w-1; x++ {
			onLeft := x == 0
			onRight := x == w-2

			vtl := g.At(x, y)
			vtr := g.At(x+1, y)
			vbr := g.At(x+1, y+1)
			vbl := g.At(x, y+1)

			idx := caseIndex(vtl, vtr, vbr, vbl, level)
			if idx == 0 && !polygonMode {
				continue
			}

			c := computeCell(x, y, vtl, vtr, vbr, vbl, level)

			if !polygonMode {
				segs = append(segs, caseSegments(c, idx)...)
				continue
			}

			allSides := onTop && onBottom && onLeft && onRight
			var interior []seg
			if allSides && (idx == 5 || idx == 10) {
				interior = altSaddleSegments(c, idx)
			} else {
				interior = caseSegments(c, idx)
			}
			segs = append(segs, interior...)

			if onTop || onBottom || onLeft || onRight {
				insideTL := vtl >= level
				insideTR := vtr >= level
				insideBR := vbr >= level
				insideBL := vbl >= level
				segs = append(segs, boundarySegments(c, insideTL, insideTR, insideBR, insideBL, onTop, onBottom, onLeft, onRight)...)
			}
		}
	}
	return segs
}

// TraceLines traces isolines at each of levels and returns one LineString
// feature per merged polyline, each tagged with property "level".
func TraceLines(g *grid.Grid, levels []float64) []feature.Feature {
	var out []feature.Feature
	for _, level := range levels {
		segs := collectSegments(g, level, false)
		for _, coords := range mergeSegments(segs) {
			if len(coords) < 2 {
				continue
			}
			props := feature.Props{{Key: "level", Value: feature.Float(level)}}
			out = append(out, feature.NewLine(coords, props))
		}
	}
	return out
}

// TracePolygons traces isobands (value >= level) at each of levels and
// returns Polygon features with holes assigned per §4.4.3.
func TracePolygons(g *grid.Grid, levels []float64) []feature.Feature {
	var out []feature.Feature
	for _, level := range levels {
		segs := collectSegments(g, level, true)
		chains := mergeSegments(segs)
		out = append(out, assemblePolygons(chains, level)...)
	}
	return out
}
