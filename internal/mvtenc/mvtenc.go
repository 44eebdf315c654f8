// Package mvtenc encodes feature.Feature slices, already projected into
// tile-extent coordinate space by internal/clip, into Mapbox Vector Tile
// protobuf payloads.
package mvtenc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"

	"contourtiles/internal/feature"
)

const defaultExtent = 4096

func toGeometry(f feature.Feature) (orb.Geometry, error) {
	switch f.Kind {
	case feature.KindLineString:
		ls := make(orb.LineString, len(f.Line))
		for i, p := range f.Line {
			ls[i] = orb.Point{p[0], p[1]}
		}
		return ls, nil
	case feature.KindPolygon:
		poly := make(orb.Polygon, len(f.Rings))
		for i, r := range f.Rings {
			ring := make(orb.Ring, len(r))
			for j, p := range r {
				ring[j] = orb.Point{p[0], p[1]}
			}
			poly[i] = ring
		}
		return poly, nil
	case feature.KindPoint:
		return orb.Point{f.Point[0], f.Point[1]}, nil
	default:
		return nil, fmt.Errorf("mvtenc: unknown feature kind %v", f.Kind)
	}
}

func toGeoJSONFeature(f feature.Feature) (*geojson.Feature, error) {
	geom, err := toGeometry(f)
	if err != nil {
		return nil, err
	}
	gf := geojson.NewFeature(geom)
	gf.Properties = geojson.Properties(f.Props.Map())
	return gf, nil
}

// Layer is one named group of features destined for a single MVT layer,
// e.g. "contour" or "hillshade".
type Layer struct {
	Name     string
	Features []feature.Feature
}

// Encode builds Mapbox Vector Tile layers from already-extent-projected
// features. gzipped controls whether the protobuf payload is additionally
// gzip-compressed; the HTTP handler passes its Compression setting and
// sets Content-Encoding to match.
func Encode(layers []Layer, gzipped bool) ([]byte, error) {
	out := make(mvt.Layers, 0, len(layers))
	for _, l := range layers {
		gjFeatures := make([]*geojson.Feature, 0, len(l.Features))
		for _, f := range l.Features {
			gf, err := toGeoJSONFeature(f)
			if err != nil {
				return nil, err
			}
			gjFeatures = append(gjFeatures, gf)
		}
		out = append(out, &mvt.Layer{
			Name:     l.Name,
			Version:  2,
			Extent:   defaultExtent,
			Features: gjFeatures,
		})
	}

	// Geometry has already been projected into [0,extent] tile-local
	// space by internal/clip, so no further ProjectToTile pass runs here.
	if gzipped {
		return mvt.MarshalGzipped(out)
	}
	return mvt.Marshal(out)
}

// Headers returns the HTTP response headers for an encoded tile payload.
func Headers(ttl time.Duration, gzipped bool) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/vnd.mapbox-vector-tile")
	if gzipped {
		h.Set("Content-Encoding", "gzip")
	}
	if ttl > 0 {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
	}
	return h
}
