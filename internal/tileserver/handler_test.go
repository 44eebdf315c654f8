package tileserver

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"contourtiles/internal/fetchtile"
	"contourtiles/internal/terrain"
)

type flatGetter struct{}

func (flatGetter) Get(ctx context.Context, url string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := byte(50 + x*10)
			img.Set(x, y, color.RGBA{R: 0, G: 0, B: v, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes(), nil
}

func newTestHandler() *Handler {
	f := &fetchtile.Fetcher{
		URLTemplate: "https://example.test/{z}/{x}/{y}.png",
		Scheme:      terrain.MapBox{},
		TileSize:    8,
		Getter:      flatGetter{},
		Decoder:     fetchtile.NewImageDecoder(),
	}
	return &Handler{
		Source:   fetchtile.NewSource(f),
		TileSize: 8,
		BufferPx: 2,
	}
}

func newTestMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tiles/{kind}/{z}/{x}/{y}", h.HandleTile)
	return mux
}

func TestHandleTileContour(t *testing.T) {
	h := newTestHandler()
	mux := newTestMux(h)

	req := httptest.NewRequest(http.MethodGet, "/tiles/contour/10/5/5.mvt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.mapbox-vector-tile", rec.Header().Get("Content-Type"))
}

func TestHandleTileHillshade(t *testing.T) {
	h := newTestHandler()
	mux := newTestMux(h)

	req := httptest.NewRequest(http.MethodGet, "/tiles/hillshade/10/5/5.mvt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleTileTerrain(t *testing.T) {
	h := newTestHandler()
	mux := newTestMux(h)

	req := httptest.NewRequest(http.MethodGet, "/tiles/terrain/10/5/5.mvt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleTileRejectsBadCoordinates(t *testing.T) {
	h := newTestHandler()
	mux := newTestMux(h)

	req := httptest.NewRequest(http.MethodGet, "/tiles/contour/3/99/99.mvt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTileUnknownKind(t *testing.T) {
	h := newTestHandler()
	mux := newTestMux(h)

	req := httptest.NewRequest(http.MethodGet, "/tiles/unknown/10/5/5.mvt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
