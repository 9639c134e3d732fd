// Package cache holds fetched listing slices keyed by filter fingerprint.
// Entries are fresh for a fixed window; stale entries are never served but
// stay in place until the next completed fetch overwrites them.
//
// Concurrent fetches for the same fingerprint are serialized by sequence
// number: each fetch registers with Begin and only the most recently
// registered one is allowed to Complete, so a slow early response can never
// clobber a newer one.
package cache

import (
	"sync"
	"time"

	"staymarket/pkg/model"
)

type entry struct {
	listings  []model.Listing
	fetchedAt time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	seq     map[string]uint64
	ttl     time.Duration
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock injects the time source. Tests use it to age entries without
// sleeping.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		seq:     make(map[string]uint64),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached listings for the fingerprint if the entry is still
// inside the freshness window.
func (c *Cache) Get(fingerprint string) ([]model.Listing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// An entry is stale only once its age exceeds the window; exactly at
	// the edge it is still served.
	e, ok := c.entries[fingerprint]
	if !ok || c.now().Sub(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.listings, true
}

// Begin registers a fetch for the fingerprint and returns its sequence
// number. A later Begin for the same fingerprint supersedes this one.
func (c *Cache) Begin(fingerprint string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq[fingerprint]++
	return c.seq[fingerprint]
}

// Complete stores fetched listings, but only if no newer fetch for the same
// fingerprint has begun since seq was issued. It reports whether the entry
// was written.
func (c *Cache) Complete(fingerprint string, seq uint64, listings []model.Listing) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq[fingerprint] != seq {
		return false
	}

	c.entries[fingerprint] = entry{listings: listings, fetchedAt: c.now()}
	return true
}

// Len reports how many fingerprints currently have an entry, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
