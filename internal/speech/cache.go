package speech

import (
	"bytes"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache memoizes synthesized audio per (voice, text) pair. Entries expire a
// fixed TTL after insertion and the least recently used entry is evicted once
// the store is full. Safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[string, []byte]
}

func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func cacheKey(voice, text string) string {
	return voice + "|" + text
}

// Get returns a copy of the cached audio for the pair, if still present.
func (c *Cache) Get(voice, text string) ([]byte, bool) {
	v, ok := c.lru.Get(cacheKey(voice, text))
	if !ok {
		return nil, false
	}
	return bytes.Clone(v), true
}

// Put stores a copy of audio so later mutation of the argument cannot leak
// into cached entries.
func (c *Cache) Put(voice, text string, audio []byte) {
	c.lru.Add(cacheKey(voice, text), bytes.Clone(audio))
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
