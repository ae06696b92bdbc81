package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mlavell/sproutlog/internal/domain"
)

// cachedView pairs a rendered calendar with the fingerprint of the inputs it
// was built from. A stale fingerprint means the snapshot changed underneath
// the cache and the entry must not be served.
type cachedView struct {
	fingerprint string
	view        *domain.CalendarView
}

// viewCache memoizes rendered calendar views per user and selected day.
// Entries expire on a TTL as a backstop; event-driven invalidation is the
// primary eviction path.
type viewCache struct {
	lru *expirable.LRU[string, cachedView]
}

func newViewCache(size int, ttl time.Duration) *viewCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &viewCache{
		lru: expirable.NewLRU[string, cachedView](size, nil, ttl),
	}
}

func cacheKey(userID, selectedDate string) string {
	return userID + "|" + selectedDate
}

func (c *viewCache) get(key, fingerprint string) (*domain.CalendarView, bool) {
	entry, ok := c.lru.Get(key)
	if !ok || entry.fingerprint != fingerprint {
		return nil, false
	}
	return entry.view, true
}

func (c *viewCache) put(key, fingerprint string, view *domain.CalendarView) {
	c.lru.Add(key, cachedView{fingerprint: fingerprint, view: view})
}

// invalidateUser drops every cached view belonging to the user
func (c *viewCache) invalidateUser(userID string) {
	prefix := userID + "|"
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}

// snapshotFingerprint hashes the annotation inputs in a deterministic order.
// Identical snapshots always hash identically regardless of map iteration.
func snapshotFingerprint(plantings domain.PlantingSet, catalog map[string]domain.Seed, selectedDate string) string {
	h := sha256.New()

	dates := make([]string, 0, len(plantings))
	for date := range plantings {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		h.Write([]byte(date))
		h.Write([]byte{'='})
		seedIDs := append([]string(nil), plantings[date]...)
		sort.Strings(seedIDs)
		for _, id := range seedIDs {
			h.Write([]byte(id))
			h.Write([]byte{','})
		}
		h.Write([]byte{';'})
	}

	seedIDs := make([]string, 0, len(catalog))
	for id := range catalog {
		seedIDs = append(seedIDs, id)
	}
	sort.Strings(seedIDs)
	for _, id := range seedIDs {
		seed := catalog[id]
		h.Write([]byte(id))
		h.Write([]byte{':'})
		h.Write([]byte(seed.Name))
		h.Write([]byte{':'})
		h.Write([]byte(strconv.Itoa(seed.MinGrowthDays)))
		h.Write([]byte{'-'})
		h.Write([]byte(strconv.Itoa(seed.MaxGrowthDays)))
		h.Write([]byte{';'})
	}

	h.Write([]byte{'|'})
	h.Write([]byte(selectedDate))

	return hex.EncodeToString(h.Sum(nil))
}
