package tileserver

// Tile geometry shared across the fetch -> trace -> encode pipeline.
const (
	TileSize       = 256
	SourceTileSize = 512
	BufferPx       = 8
	MVTExtent      = 4096
)

// Elevation range traced for contour levels, regardless of what a given
// tile's own min/max happens to be: fixed bounds keep the same level set
// aligned across neighboring tiles.
const (
	MinElevation = -500.0
	MaxElevation = 9000.0
)

// Luminance range a hillshade grid is mapped into.
const (
	MinLuminance = 0.0
	MaxLuminance = 256.0
)

// Default sun position used when none is configured.
const (
	DefaultSunAltitude = 45.0
	DefaultSunAzimuth  = 315.0
)

// TerrainSampleStride is the pixel spacing between raw elevation samples
// emitted by the terrain passthrough layer.
const TerrainSampleStride = 16
