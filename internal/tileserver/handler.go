// Package tileserver orchestrates the fetch -> trace -> smooth -> clip ->
// encode pipeline behind an HTTP handler.
package tileserver

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"contourtiles/internal/clip"
	"contourtiles/internal/feature"
	"contourtiles/internal/fetchtile"
	"contourtiles/internal/mvtenc"
	"contourtiles/internal/tilecache"
)

// Handler serves /tiles/{kind}/{z}/{x}/{y}.mvt vector tile requests.
type Handler struct {
	Source      *fetchtile.Source
	Cache       tilecache.Cache
	CacheTTL    time.Duration
	Compression bool
	TileSize    int
	BufferPx    int
	Logger      *log.Logger
	Timeout     time.Duration
}

func (h *Handler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleTile implements http.HandlerFunc for the "GET
// /tiles/{kind}/{z}/{x}/{y}.mvt" pattern.
func (h *Handler) HandleTile(w http.ResponseWriter, r *http.Request) {
	z, x, y, kind, err := parseCoords(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := tilecache.Key{Z: z, X: x, Y: y, Kind: kind}
	if h.Cache != nil {
		if entry, ok := h.Cache.Match(key); ok {
			for k, v := range entry.Headers {
				w.Header().Set(k, v)
			}
			w.Write(entry.Body)
			return
		}
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	bg, err := h.Source.FetchBuffered(ctx, fetchtile.TileCoord{Z: z, X: x, Y: y}, h.BufferPx)
	if err != nil {
		h.logger().Printf("tileserver: fetch z=%d x=%d y=%d: %v", z, x, y, err)
		http.Error(w, UpstreamUnavailableError{Cause: err}.Error(), http.StatusBadGateway)
		return
	}

	var feats []feature.Feature
	switch kind {
	case "contour":
		feats = ContourFeatures(bg.Grid, z)
	case "hillshade":
		polys, err := HillshadeFeatures(bg.Grid, z, h.TileSize)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		feats = polys
	case "terrain":
		feats = TerrainFeatures(bg, TerrainSampleStride)
	default:
		http.Error(w, InvalidInputError{Msg: "unknown layer kind " + kind}.Error(), http.StatusNotFound)
		return
	}

	var transformed []feature.Feature
	for _, f := range feats {
		transformed = append(transformed, clip.Transform(f, h.BufferPx, h.TileSize, MVTExtent)...)
	}
	feats = transformed

	raw, err := mvtenc.Encode([]mvtenc.Layer{{Name: kind, Features: feats}}, h.Compression)
	if err != nil {
		h.logger().Printf("tileserver: encode z=%d x=%d y=%d kind=%s: %v", z, x, y, kind, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	headers := mvtenc.Headers(h.CacheTTL, h.Compression)
	for k, v := range headers {
		w.Header()[k] = v
	}

	if h.Cache != nil {
		stored := map[string]string{}
		for k, v := range headers {
			if len(v) > 0 {
				stored[k] = v[0]
			}
		}
		go h.Cache.Put(key, tilecache.Entry{Body: raw, Headers: stored})
	}

	w.Write(raw)
}

func parseCoords(r *http.Request) (z, x, y int, kind string, err error) {
	z, zerr := strconv.Atoi(r.PathValue("z"))
	x, xerr := strconv.Atoi(r.PathValue("x"))
	y, yerr := strconv.Atoi(strings.TrimSuffix(r.PathValue("y"), ".mvt"))
	kind = r.PathValue("kind")
	if zerr != nil || xerr != nil || yerr != nil {
		return 0, 0, 0, "", InvalidInputError{Msg: "z/x/y must be integers"}
	}
	if z < 0 || z > 22 {
		return 0, 0, 0, "", BadCoordinatesError{Z: z, X: x, Y: y}
	}
	n := 1 << z
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, 0, 0, "", BadCoordinatesError{Z: z, X: x, Y: y}
	}
	return z, x, y, kind, nil
}
