package fetchtile

import (
	"context"
	"sync/atomic"

	"contourtiles/internal/grid"
)

// Source holds a hot-swappable Fetcher so a config reload can point the
// service at a new upstream URL template without restarting in-flight
// requests: readers always see either the old or the new Fetcher, never a
// half-updated one.
type Source struct {
	current atomic.Pointer[Fetcher]
}

// NewSource returns a Source initialized with f.
func NewSource(f *Fetcher) *Source {
	s := &Source{}
	s.current.Store(f)
	return s
}

// Swap installs a new Fetcher, returning the one it replaced.
func (s *Source) Swap(f *Fetcher) *Fetcher {
	return s.current.Swap(f)
}

// FetchBuffered delegates to whichever Fetcher is current at call time.
func (s *Source) FetchBuffered(ctx context.Context, center TileCoord, bufferPx int) (*grid.BufferedGrid, error) {
	return s.current.Load().FetchBuffered(ctx, center, bufferPx)
}
