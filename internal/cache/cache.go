// Package cache holds the single-slot, time-boxed cache of the last
// successful list response. It represents only the most recent query
// result: any query-state change must clear it before the next fetch
// so stale results are never shown for a different query.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"leadline/internal/lead"
	"leadline/internal/leadapi"
	"leadline/internal/log"
)

// DefaultTTL bounds how long a cached page may be served.
const DefaultTTL = time.Hour

const slotKey = "lead-list"

// Entry is one cached page of leads with its pagination metadata.
type Entry struct {
	Leads     []lead.Lead
	Meta      leadapi.Meta
	FetchedAt time.Time
}

// Expired reports whether the entry is older than ttl at the given
// instant. An expired entry must be treated as absent.
func (e Entry) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.FetchedAt) > ttl
}

// ResultCache is the single-slot cache.
type ResultCache struct {
	ttl   time.Duration
	store *gocache.Cache
}

// New creates a result cache with the given TTL. A non-positive TTL
// falls back to DefaultTTL.
func New(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		ttl:   ttl,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached entry if present and not expired.
func (c *ResultCache) Get() (Entry, bool) {
	value, found := c.store.Get(slotKey)
	if !found {
		return Entry{}, false
	}
	entry, ok := value.(Entry)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting entry")
		return Entry{}, false
	}
	if entry.Expired(c.ttl, time.Now()) {
		c.store.Delete(slotKey)
		return Entry{}, false
	}
	log.Debug(log.CatCache, "cache hit", "leads", len(entry.Leads))
	return entry, true
}

// Put replaces the slot with a fresh entry.
func (c *ResultCache) Put(leads []lead.Lead, meta leadapi.Meta) {
	c.store.Set(slotKey, Entry{Leads: leads, Meta: meta, FetchedAt: time.Now()}, c.ttl)
}

// Clear empties the slot.
func (c *ResultCache) Clear() {
	c.store.Delete(slotKey)
}
