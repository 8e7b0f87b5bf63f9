// ABOUTME: Per-URL result cache for the extraction orchestrator
// ABOUTME: Explicit lifecycle wrapper over an in-memory TTL cache

package extract

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"clipper-app-api/core/domain"
)

// ResultCache stores the last successful full-page extraction per URL so
// repeated requests without forceRefresh are idempotent and cheap. It is
// owned by the orchestrator instance, not ambient global state.
type ResultCache struct {
	entries *gocache.Cache
}

// NewResultCache creates a cache whose entries expire after ttl.
// A non-positive ttl keeps entries until invalidated.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &ResultCache{entries: gocache.New(ttl, 10*time.Minute)}
}

// Get returns the cached record for a URL, if present.
func (c *ResultCache) Get(url string) (domain.ArticleRecord, bool) {
	v, found := c.entries.Get(url)
	if !found {
		return domain.ArticleRecord{}, false
	}
	record, ok := v.(domain.ArticleRecord)
	return record, ok
}

// Put stores the record for a URL, replacing any previous entry.
func (c *ResultCache) Put(url string, record domain.ArticleRecord) {
	c.entries.Set(url, record, gocache.DefaultExpiration)
}

// Invalidate removes a single URL's entry.
func (c *ResultCache) Invalidate(url string) {
	c.entries.Delete(url)
}

// Clear removes every entry.
func (c *ResultCache) Clear() {
	c.entries.Flush()
}
