// Package config loads the service's runtime settings from the
// environment. No third-party config library appears anywhere in the
// retrieval pack, so settings are read directly with os.Getenv, strconv
// and time.ParseDuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"contourtiles/internal/terrain"
)

// Config holds every environment-tunable setting the service reads at
// startup.
type Config struct {
	ListenAddr         string
	DEMTileURLTemplate string
	DEMTileSize        int
	DEMEncoding        terrain.Encoding
	BufferPx           int
	CacheEnabled       bool
	CacheTTL           time.Duration
	CompressionEnabled bool
	UpstreamTimeout    time.Duration
}

// Load reads Config from the environment, applying documented defaults
// for anything unset.
func Load() (Config, error) {
	c := Config{
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		DEMTileURLTemplate: getEnv("DEM_TILE_URL", "https://api.maptiler.com/tiles/terrain-rgb/{z}/{x}/{y}.webp"),
		DEMEncoding:        terrain.Encoding(getEnv("DEM_ENCODING", string(terrain.MapBoxEncoding))),
		CompressionEnabled: getBool("COMPRESSION_ENABLED", true),
		CacheEnabled:       getBool("CACHE_ENABLED", true),
	}

	var err error
	if c.DEMTileSize, err = getInt("DEM_TILE_SIZE", 256); err != nil {
		return Config{}, err
	}
	if c.BufferPx, err = getInt("BUFFER_PX", 8); err != nil {
		return Config{}, err
	}
	if c.CacheTTL, err = getDuration("CACHE_TTL", 86400*time.Second); err != nil {
		return Config{}, err
	}
	if c.UpstreamTimeout, err = getDuration("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	return c, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}
