// Package hillshade computes Lambertian illumination from an elevation
// grid's Sobel gradient.
package hillshade

import (
	"fmt"
	"math"

	"contourtiles/internal/grid"
)

// Params configures a hillshade pass.
type Params struct {
	CellSize    float64 // meters per pixel on the ground
	AltitudeDeg float64 // sun altitude above the horizon, [0,90]
	AzimuthDeg  float64 // sun azimuth clockwise from north, [0,360]
}

// Validate enforces the sun-angle domain spec §4.3/§7 require.
func (p Params) Validate() error {
	if p.AltitudeDeg < 0 || p.AltitudeDeg > 90 {
		return fmt.Errorf("hillshade: altitude %v out of range [0,90]", p.AltitudeDeg)
	}
	if p.AzimuthDeg < 0 || p.AzimuthDeg > 360 {
		return fmt.Errorf("hillshade: azimuth %v out of range [0,360]", p.AzimuthDeg)
	}
	if p.CellSize <= 0 {
		return fmt.Errorf("hillshade: cell size must be positive, got %v", p.CellSize)
	}
	return nil
}

const epsilon = 1e-10

// sunVector precomputes the values that don't change per pixel.
type sunVector struct {
	sx, sy, sz float64
	g          float64
	flat       float64
}

func newSunVector(p Params) sunVector {
	azimuthRad := (360 - p.AzimuthDeg + 90) * math.Pi / 180
	zenithRad := (90 - p.AltitudeDeg) * math.Pi / 180
	sinZ := math.Sin(zenithRad)
	cosZ := math.Cos(zenithRad)
	return sunVector{
		sx:   sinZ * math.Cos(azimuthRad),
		sy:   sinZ * math.Sin(azimuthRad),
		sz:   cosZ,
		g:    1 / (8 * p.CellSize),
		flat: 255 * cosZ,
	}
}

// Compute runs the Sobel + Lambertian pass over g and returns a grid of
// values in [0,255], same dimensions as the input.
func Compute(g *grid.Grid, p Params) (*grid.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sv := newSunVector(p)
	w, h := g.Width(), g.Height()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := g.At(x-1, y-1)
			b := g.At(x, y-1)
			c := g.At(x+1, y-1)
			d := g.At(x-1, y)
			f := g.At(x+1, y)
			gg := g.At(x-1, y+1)
			hh := g.At(x, y+1)
			i := g.At(x+1, y+1)

			dzdx := (c + 2*f + i - (a + 2*d + gg)) * sv.g
			dzdy := (gg + 2*hh + i - (a + 2*b + c)) * sv.g

			var illum float64
			if dzdx*dzdx+dzdy*dzdy < epsilon {
				illum = sv.flat
			} else {
				n := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)
				illum = 255 * (-sv.sx*dzdx - sv.sy*dzdy + sv.sz) / n
				if illum < 0 {
					illum = 0
				} else if illum > 255 {
					illum = 255
				}
			}
			out[y*w+x] = illum
		}
	}
	return grid.New(w, h, out)
}

// Resolution returns getResolution(z): the ground size of one pixel, in
// meters, for a Web Mercator tile of tileSize pixels at zoom z.
func Resolution(z int, tileSize int) float64 {
	const earthCircumference = 2 * math.Pi * 6378137
	return earthCircumference / (float64(tileSize) * math.Pow(2, float64(z)))
}
