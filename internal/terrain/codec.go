// Package terrain implements the terrain-RGB elevation encodings: MapBox's
// and Terrarium's. Both pack an elevation sample into three 8-bit RGB
// channels; alpha is ignored on decode and written as opaque on encode.
package terrain

import "math"

// Scheme converts between a single elevation sample and its RGBA
// terrain-tile encoding. Pix is [R,G,B,A].
type Scheme interface {
	Decode(pix [4]byte) float64
	Encode(h float64) [4]byte
}

// Encoding names the two schemes Scheme implementations provide, used by
// configuration to select one by name.
type Encoding string

const (
	MapBoxEncoding    Encoding = "mapbox"
	TerrariumEncoding Encoding = "terrarium"
)

// SchemeFor returns the Scheme for a named encoding.
func SchemeFor(e Encoding) Scheme {
	switch e {
	case TerrariumEncoding:
		return Terrarium{}
	default:
		return MapBox{}
	}
}

// MapBox implements Mapbox's terrain-RGB scheme:
// h = (R*65536 + G*256 + B)/10 - 10000.
type MapBox struct{}

func (MapBox) Decode(pix [4]byte) float64 {
	r, g, b := float64(pix[0]), float64(pix[1]), float64(pix[2])
	return (r*65536+g*256+b)/10 - 10000
}

func (MapBox) Encode(h float64) [4]byte {
	v := int64(math.Round((h + 10000) * 10))
	if v < 0 {
		v = 0
	}
	return [4]byte{
		byte((v >> 16) & 0xFF),
		byte((v >> 8) & 0xFF),
		byte(v & 0xFF),
		255,
	}
}

// Terrarium implements Mapzen/AWS Terrarium's scheme:
// h = R*256 + G + B/256 - 32768.
type Terrarium struct{}

func (Terrarium) Decode(pix [4]byte) float64 {
	r, g, b := float64(pix[0]), float64(pix[1]), float64(pix[2])
	return r*256 + g + b/256 - 32768
}

func (Terrarium) Encode(h float64) [4]byte {
	a := h + 32768
	r := math.Floor(a / 256)
	g := math.Floor(math.Mod(a, 256))
	b := math.Floor((a - 256*r - g) * 256)
	return [4]byte{
		byte(clampByte(r)),
		byte(clampByte(g)),
		byte(clampByte(b)),
		255,
	}
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
