// Package grid implements the 2D row-major numeric grid used throughout
// the pipeline: elevation samples in, hillshade samples out, and the
// buffered variant that the fetcher hands to the tracer.
package grid

import "fmt"

// Grid is an immutable-after-construction row-major array of float64.
type Grid struct {
	width  int
	height int
	data   []float64
}

// New validates width, height and len(data) and returns a Grid.
func New(width, height int, data []float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: width and height must be positive, got %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("grid: data length %d does not match %dx%d", len(data), width, height)
	}
	return &Grid{width: width, height: height, data: data}, nil
}

// NewFilled builds a width×height grid where every sample equals v.
func NewFilled(width, height int, v float64) *Grid {
	data := make([]float64, width*height)
	for i := range data {
		data[i] = v
	}
	g, _ := New(width, height, data)
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Data returns the underlying row-major sample slice. Callers must not
// mutate it; Grid is immutable after construction.
func (g *Grid) Data() []float64 { return g.data }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// At returns the sample at (x,y), clamping out-of-bounds coordinates into
// [0,width-1]x[0,height-1] rather than panicking, so convolution and
// tracing kernels can run right up to the grid edge without special-casing
// it.
func (g *Grid) At(x, y int) float64 {
	x = clampInt(x, 0, g.width-1)
	y = clampInt(y, 0, g.height-1)
	return g.data[y*g.width+x]
}

// Set writes the sample at (x,y), clamping coordinates like At. It exists
// for callers building a Grid incrementally before treating it as
// immutable; nothing in this module calls it.
func (g *Grid) Set(x, y int, v float64) {
	x = clampInt(x, 0, g.width-1)
	y = clampInt(y, 0, g.height-1)
	g.data[y*g.width+x] = v
}

// Map returns a new Grid with f applied to every sample.
func (g *Grid) Map(f func(float64) float64) *Grid {
	out := make([]float64, len(g.data))
	for i, v := range g.data {
		out[i] = f(v)
	}
	gg, _ := New(g.width, g.height, out)
	return gg
}

// Invert maps every sample v to 255-v (used to derive the shadow-side
// hillshade grid from the highlight-side one).
func Invert(g *Grid) *Grid {
	return g.Map(func(v float64) float64 { return 255 - v })
}

// Clamp maps every sample into [min,max].
func Clamp(g *Grid, min, max float64) *Grid {
	return g.Map(func(v float64) float64 {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	})
}
