package loader

import (
	"sync"

	"go.trai.ch/dataloader/internal/core/domain"
)

type cacheEntry struct {
	doc    *domain.Document
	digest uint64
}

// DocumentCache maps resolved paths to parsed documents for the life of the process.
// Entries are never evicted. Documents are cloned on the way in and on the way out,
// so no caller ever holds the cached tree.
type DocumentCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewDocumentCache creates an empty cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{entries: make(map[string]cacheEntry)}
}

// Get returns an independent copy of the document cached for path.
func (c *DocumentCache) Get(path string) (*domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	return entry.doc.Clone(), true
}

// Put stores a copy of doc under path together with the digest of its source text.
func (c *DocumentCache) Put(path string, doc *domain.Document, digest uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = cacheEntry{doc: doc.Clone(), digest: digest}
}

// Digest returns the source digest recorded for path.
func (c *DocumentCache) Digest(path string) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	return entry.digest, ok
}

// Len returns the number of cached paths.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
