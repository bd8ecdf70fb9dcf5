// Package cache is the short-TTL response cache for computed reports. It
// is a bounded LRU with TTL expiry and deterministic eviction order: least
// recently used first, insertion order on ties. The strategy core itself
// is stateless; this cache lives at the transport layer.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/casemark/strategist/pkg/models"
)

// Fingerprint derives the cache key for a case from its id and document
// contents. Any document change produces a new key.
func Fingerprint(caseID string, documents []models.Document) string {
	h := sha256.New()
	h.Write([]byte(caseID))
	for _, doc := range documents {
		h.Write([]byte(doc.ID))
		h.Write([]byte(doc.Name))
		h.Write(doc.ExtractedJSON)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

type entry struct {
	key       string
	report    models.Report
	expiresAt time.Time
}

// ReportCache is a bounded TTL+LRU cache of computed reports.
type ReportCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List // front = most recently used
	items    map[string]*list.Element
	now      func() time.Time
}

// New creates a cache. Non-positive capacity defaults to 128; non-positive
// TTL defaults to five minutes.
func New(capacity int, ttl time.Duration) *ReportCache {
	if capacity <= 0 {
		capacity = 128
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

// Get returns the cached report for the key if present and unexpired.
func (c *ReportCache) Get(key string) (models.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return models.Report{}, false
	}
	ent := el.Value.(*entry)
	if c.now().After(ent.expiresAt) {
		c.order.Remove(el)
		delete(c.items, key)
		return models.Report{}, false
	}
	c.order.MoveToFront(el)
	return ent.report, true
}

// Set stores a report, evicting the least recently used entry when full.
func (c *ReportCache) Set(key string, report models.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.report = report
		ent.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	for len(c.items) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}

	el := c.order.PushFront(&entry{
		key:       key,
		report:    report,
		expiresAt: c.now().Add(c.ttl),
	})
	c.items[key] = el
}

// Invalidate drops a key, if cached.
func (c *ReportCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len reports the number of live entries, expired or not.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
