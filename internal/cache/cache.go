package cache

import (
	"crypto/md5"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/terval-edu/orienta/internal/analytics"
)

// SummaryCache memoizes cohort summaries keyed by a hash of the record
// collection. The summary itself is always recomputed from scratch when
// the collection changes; the cache only avoids recomputation for an
// unchanged snapshot.
type SummaryCache struct {
	mu      sync.RWMutex
	key     string
	summary analytics.Summary
	setAt   time.Time
	ttl     time.Duration

	hits   int64
	misses int64
}

// NewSummaryCache creates a cache with the given TTL.
func NewSummaryCache(ttl time.Duration) *SummaryCache {
	return &SummaryCache{ttl: ttl}
}

// Key derives a stable key from the collection snapshot. Record IDs plus
// statuses cover every mutation the operator flow allows.
func Key(entries []analytics.Entry) string {
	h := md5.New()
	fmt.Fprintf(h, "n=%d;", len(entries))
	for _, e := range entries {
		fmt.Fprintf(h, "%s:%s;", e.Record.ID, e.Record.Status)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Get returns the cached summary for the key, if fresh.
func (c *SummaryCache) Get(key string) (analytics.Summary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.key != key || time.Since(c.setAt) > c.ttl {
		atomic.AddInt64(&c.misses, 1)
		return analytics.Summary{}, false
	}
	atomic.AddInt64(&c.hits, 1)
	return c.summary, true
}

// Set stores the summary under the key, replacing any previous entry.
func (c *SummaryCache) Set(key string, s analytics.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.summary = s
	c.setAt = time.Now()
}

// Stats reports hit/miss counters for the metrics endpoint.
func (c *SummaryCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]interface{}{
		"hits":   atomic.LoadInt64(&c.hits),
		"misses": atomic.LoadInt64(&c.misses),
		"age_ms": time.Since(c.setAt).Milliseconds(),
	}
}
