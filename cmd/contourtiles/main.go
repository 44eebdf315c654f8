package main

import (
	"log"
	"net/http"

	"contourtiles/internal/config"
	"contourtiles/internal/fetchtile"
	"contourtiles/internal/terrain"
	"contourtiles/internal/tilecache"
	"contourtiles/internal/tileserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("contourtiles: config: %v", err)
	}

	fetcher := &fetchtile.Fetcher{
		URLTemplate: cfg.DEMTileURLTemplate,
		Scheme:      terrain.SchemeFor(cfg.DEMEncoding),
		TileSize:    cfg.DEMTileSize,
		Getter:      fetchtile.NewHTTPGetter(cfg.UpstreamTimeout),
		Decoder:     fetchtile.NewImageDecoder(),
	}

	var cache tilecache.Cache
	if cfg.CacheEnabled {
		cache = tilecache.NewMemoryCache(cfg.CacheTTL)
	}

	h := &tileserver.Handler{
		Source:      fetchtile.NewSource(fetcher),
		Cache:       cache,
		CacheTTL:    cfg.CacheTTL,
		Compression: cfg.CompressionEnabled,
		TileSize:    cfg.DEMTileSize,
		BufferPx:    cfg.BufferPx,
		Timeout:     cfg.UpstreamTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tiles/{kind}/{z}/{x}/{y}", h.HandleTile)

	log.Printf("contourtiles: listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("contourtiles: %v", err)
	}
}
