// Package tileview renders live contour/hillshade tile output to a
// terminal, adapting the braille micro-grid renderer and scanline
// polygon fill used throughout this program's rendering code, pointed at
// the tile pipeline's output instead of a loaded file.
package tileview

import (
	"sort"

	"contourtiles/internal/feature"
)

// Render draws feats (already in [0,extent] tile-local coordinate space)
// into a w x h terminal cell grid of braille glyphs: polygons filled via
// even-odd scanline, lines and shells via Bresenham micro-grid edges.
func Render(feats []feature.Feature, extent float64, w, h int) string {
	lines := make([]string, h)
	for y := range lines {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		lines[y] = string(row)
	}

	br := newBrailleBuf(w, h)
	wMic, hMic := w*2, h*4

	project := func(p feature.Pt) (int, int) {
		nx := p[0] / extent
		ny := p[1] / extent
		return int(nx * float64(wMic-1)), int(ny * float64(hMic-1))
	}

	for _, f := range feats {
		switch f.Kind {
		case feature.KindPolygon:
			fillRing(br, f.Shell(), project, hMic)
			drawRingEdges(br, f.Shell(), project)
			for _, hole := range f.Holes() {
				drawRingEdges(br, hole, project)
			}
		case feature.KindLineString:
			drawLine(br, f.Line, project)
		}
	}

	braLines := br.toLines()
	for y := 0; y < h; y++ {
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	out := lines[0]
	for i := 1; i < len(lines); i++ {
		out += "\n" + lines[i]
	}
	return out
}

func drawRingEdges(br *brailleBuf, ring feature.Ring, project func(feature.Pt) (int, int)) {
	for i := 0; i < len(ring)-1; i++ {
		x0, y0 := project(ring[i])
		x1, y1 := project(ring[i+1])
		br.drawLineMicro(x0, y0, x1, y1)
	}
}

func drawLine(br *brailleBuf, line []feature.Pt, project func(feature.Pt) (int, int)) {
	for i := 0; i < len(line)-1; i++ {
		x0, y0 := project(line[i])
		x1, y1 := project(line[i+1])
		br.drawLineMicro(x0, y0, x1, y1)
	}
}

// fillRing fills ring with an even-odd scanline pass over the micro-grid.
func fillRing(br *brailleBuf, ring feature.Ring, project func(feature.Pt) (int, int), hMic int) {
	if len(ring) < 3 {
		return
	}
	type micPt struct{ x, y int }
	pts := make([]micPt, len(ring))
	for i, p := range ring {
		x, y := project(p)
		pts[i] = micPt{x, y}
	}
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.y == b.y {
				continue
			}
			y0, y1 := a.y, b.y
			x0, x1 := a.x, b.x
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start, end := xs[i], xs[i+1]
			if start > end {
				start, end = end, start
			}
			for x := start; x <= end; x++ {
				br.setPixel(x, yMic)
			}
		}
	}
}

