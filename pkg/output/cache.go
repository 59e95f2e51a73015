package output

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/crewreview/crew/pkg/review"
)

// ReportCache remembers the last report produced for each file, keyed by a
// digest of the file content. Watch mode consults it to skip re-reviewing a
// file whose save did not actually change its content, which editors do
// surprisingly often.
type ReportCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	maxEntries int
}

type cacheEntry struct {
	digest   string
	report   Report
	storedAt time.Time
}

// NewReportCache creates a cache holding at most maxEntries files. Values
// below 1 select a default of 50.
func NewReportCache(maxEntries int) *ReportCache {
	if maxEntries < 1 {
		maxEntries = 50
	}
	return &ReportCache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
	}
}

// Get returns the cached report for the snippet if one exists for identical
// content.
func (c *ReportCache) Get(snippet review.Snippet) (Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[snippet.Path]
	if !ok || entry.digest != contentDigest(snippet) {
		return Report{}, false
	}
	return entry.report, true
}

// Put stores the report for the snippet's current content, evicting the
// stalest entry when the cache is full.
func (c *ReportCache) Put(snippet review.Snippet, report Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[snippet.Path]; !ok && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[snippet.Path] = cacheEntry{
		digest:   contentDigest(snippet),
		report:   report,
		storedAt: time.Now(),
	}
}

// Len reports how many files currently have cached reports.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ReportCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func contentDigest(snippet review.Snippet) string {
	sum := sha256.Sum256([]byte(snippet.Source))
	return hex.EncodeToString(sum[:])
}
