package tilecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCachePutMatch(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	k := Key{Z: 3, X: 1, Y: 2, Kind: "contours"}
	_, ok := c.Match(k)
	assert.False(t, ok)

	c.Put(k, Entry{Body: []byte("tile")})
	got, ok := c.Match(k)
	assert.True(t, ok)
	assert.Equal(t, []byte("tile"), got.Body)
}

func TestMemoryCacheExpires(t *testing.T) {
	c := NewMemoryCache(time.Nanosecond)
	k := Key{Z: 0, X: 0, Y: 0, Kind: "hillshade"}
	c.Put(k, Entry{Body: []byte("x")})
	time.Sleep(time.Millisecond)
	_, ok := c.Match(k)
	assert.False(t, ok)
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache(0)
	k := Key{Z: 0, X: 0, Y: 0, Kind: "hillshade"}
	c.Put(k, Entry{Body: []byte("x")})
	time.Sleep(time.Millisecond)
	_, ok := c.Match(k)
	assert.True(t, ok)
}
