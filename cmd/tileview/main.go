package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"contourtiles/internal/config"
	"contourtiles/internal/fetchtile"
	"contourtiles/internal/terrain"
	"contourtiles/internal/tileview"
)

func main() {
	kind := flag.String("kind", "contour", "layer to preview: contour, hillshade or terrain")
	flag.Parse()

	z, x, y, err := parseCoord(flag.Arg(0))
	if err != nil {
		log.Fatalf("tileview: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("tileview: config: %v", err)
	}

	fetcher := &fetchtile.Fetcher{
		URLTemplate: cfg.DEMTileURLTemplate,
		Scheme:      terrain.SchemeFor(cfg.DEMEncoding),
		TileSize:    cfg.DEMTileSize,
		Getter:      fetchtile.NewHTTPGetter(cfg.UpstreamTimeout),
		Decoder:     fetchtile.NewImageDecoder(),
	}

	m := tileview.New(fetchtile.NewSource(fetcher), cfg.DEMTileSize, cfg.BufferPx, z, x, y, tileview.Kind(*kind))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

// parseCoord parses a "z/x/y" argument.
func parseCoord(arg string) (z, x, y int, err error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("usage: tileview <z>/<x>/<y>")
	}
	z, errz := strconv.Atoi(parts[0])
	x, errx := strconv.Atoi(parts[1])
	y, erry := strconv.Atoi(parts[2])
	if errz != nil || errx != nil || erry != nil {
		return 0, 0, 0, fmt.Errorf("z/x/y must be integers, got %q", arg)
	}
	return z, x, y, nil
}
