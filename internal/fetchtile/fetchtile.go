// Package fetchtile fetches a center terrain-RGB tile plus its eight
// neighbors, stitches them into one canvas, and decodes the window needed
// to fill a buffered elevation grid.
package fetchtile

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/webp"

	"contourtiles/internal/grid"
	"contourtiles/internal/terrain"
)

// TileCoord names a tile by zoom/column/row.
type TileCoord struct {
	Z, X, Y int
}

// HTTPGetter abstracts the upstream tile fetch so tests can stub it.
type HTTPGetter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// ImageDecoder abstracts decoding the raw tile bytes into an image.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
}

// httpGetter is the default HTTPGetter, a thin net/http client wrapper.
type httpGetter struct {
	client *http.Client
}

// NewHTTPGetter returns the default getter using the given timeout.
func NewHTTPGetter(timeout time.Duration) HTTPGetter {
	return httpGetter{client: &http.Client{Timeout: timeout}}
}

func (g httpGetter) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchtile: upstream %s returned %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// imageDecoder sniffs PNG vs WebP and decodes accordingly — terrain tile
// providers serve either depending on vendor.
type imageDecoder struct{}

// NewImageDecoder returns the default png/webp-sniffing ImageDecoder.
func NewImageDecoder() ImageDecoder { return imageDecoder{} }

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func (imageDecoder) Decode(data []byte) (image.Image, error) {
	if len(data) > 4 && bytes.Equal(data[1:4], pngSignature[1:]) {
		return png.Decode(bytes.NewReader(data))
	}
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fetchtile: decode tile image: %w", err)
	}
	return img, nil
}

// Fetcher fetches and decodes terrain-RGB tiles from one upstream source.
type Fetcher struct {
	URLTemplate string // contains {z}, {x}, {y}
	Scheme      terrain.Scheme
	TileSize    int
	Getter      HTTPGetter
	Decoder     ImageDecoder
}

func (f *Fetcher) url(c TileCoord) string {
	r := strings.NewReplacer(
		"{z}", strconv.Itoa(c.Z),
		"{x}", strconv.Itoa(c.X),
		"{y}", strconv.Itoa(c.Y),
	)
	return r.Replace(f.URLTemplate)
}

func (f *Fetcher) fetchOne(ctx context.Context, c TileCoord) (image.Image, error) {
	data, err := f.Getter.Get(ctx, f.url(c))
	if err != nil {
		return nil, err
	}
	return f.Decoder.Decode(data)
}

type neighborSpec struct {
	dx, dy int
	ox, oy int // paste origin within the 3x canvas, in source-tile units
}

var cardinalNeighbors = []neighborSpec{
	{0, -1, 1, 0}, // N
	{0, 1, 1, 2},  // S
	{-1, 0, 0, 1}, // W
	{1, 0, 2, 1},  // E
}

var cornerNeighbors = []neighborSpec{
	{-1, -1, 0, 0}, // NW
	{1, -1, 2, 0},  // NE
	{-1, 1, 0, 2},  // SW
	{1, 1, 2, 2},   // SE
}

// FetchBuffered fetches center and its eight neighbors — center
// fatal-on-failure, neighbors fetched in two concurrent batches (four
// cardinal, then four corner) and falling back to a copy of the center
// tile on individual failure — and returns the buffered elevation
// grid sampled from the stitched canvas.
func (f *Fetcher) FetchBuffered(ctx context.Context, center TileCoord, bufferPx int) (*grid.BufferedGrid, error) {
	centerImg, err := f.fetchOne(ctx, center)
	if err != nil {
		return nil, fmt.Errorf("fetchtile: center tile z=%d x=%d y=%d: %w", center.Z, center.X, center.Y, err)
	}

	ts := f.TileSize
	canvas := image.NewRGBA(image.Rect(0, 0, 3*ts, 3*ts))
	paste(canvas, centerImg, ts, ts)

	fetchBatch := func(specs []neighborSpec) {
		var wg sync.WaitGroup
		wg.Add(len(specs))
		for _, sp := range specs {
			sp := sp
			go func() {
				defer wg.Done()
				coord := TileCoord{Z: center.Z, X: center.X + sp.dx, Y: center.Y + sp.dy}
				img, err := f.fetchOne(ctx, coord)
				if err != nil {
					paste(canvas, centerImg, sp.ox*ts, sp.oy*ts)
					return
				}
				paste(canvas, img, sp.ox*ts, sp.oy*ts)
			}()
		}
		wg.Wait()
	}
	fetchBatch(cardinalNeighbors)
	fetchBatch(cornerNeighbors)

	return sampleGrid(canvas, f.Scheme, ts, bufferPx)
}

func paste(dst *image.RGBA, src image.Image, ox, oy int) {
	draw.Draw(dst, image.Rect(ox, oy, ox+dst.Bounds().Dx()/3, oy+dst.Bounds().Dy()/3), src, src.Bounds().Min, draw.Src)
}

// sampleGrid decodes the window of canvas needed for a tileSize+2*bufferPx
// buffered grid, centered on the middle tile.
func sampleGrid(canvas *image.RGBA, scheme terrain.Scheme, tileSize, bufferPx int) (*grid.BufferedGrid, error) {
	size := tileSize + 2*bufferPx
	data := make([]float64, size*size)
	originX, originY := tileSize-bufferPx, tileSize-bufferPx
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, a := canvas.At(originX+x, originY+y).RGBA()
			pix := [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
			data[y*size+x] = scheme.Decode(pix)
		}
	}
	g, err := grid.New(size, size, data)
	if err != nil {
		return nil, err
	}
	return grid.NewBuffered(g, bufferPx), nil
}
