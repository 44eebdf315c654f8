// Package tilecache holds already-encoded tile payloads keyed by
// zoom/x/y/kind so repeat requests for the same tile skip the fetch and
// trace pipeline entirely.
package tilecache

import (
	"sync"
	"time"
)

// Key identifies one cached tile response.
type Key struct {
	Z, X, Y int
	Kind    string
}

// Entry is a cached response body plus the headers it was served with.
type Entry struct {
	Body    []byte
	Headers map[string]string
}

// Cache stores encoded tile responses with a time-to-live.
type Cache interface {
	Match(k Key) (Entry, bool)
	Put(k Key, e Entry)
}

type record struct {
	entry   Entry
	expires time.Time
}

// memoryCache is the default Cache, backed by sync.Map with lazy TTL
// eviction: an expired record is deleted when Match finds it and reported
// as a miss, rather than swept by a background goroutine.
type memoryCache struct {
	ttl  time.Duration
	data sync.Map
}

// NewMemoryCache returns a process-local Cache. ttl <= 0 disables
// expiry — every Put lives until overwritten.
func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{ttl: ttl}
}

func (c *memoryCache) Match(k Key) (Entry, bool) {
	v, ok := c.data.Load(k)
	if !ok {
		return Entry{}, false
	}
	r := v.(record)
	if c.ttl > 0 && time.Now().After(r.expires) {
		c.data.Delete(k)
		return Entry{}, false
	}
	return r.entry, true
}

func (c *memoryCache) Put(k Key, e Entry) {
	c.data.Store(k, record{entry: e, expires: time.Now().Add(c.ttl)})
}
