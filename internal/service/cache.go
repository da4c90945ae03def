package service

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"finextract/internal/models"
)

type cacheKey struct {
	digest string
	model  string
}

// ExtractionCache memoizes validated records per (content digest, model id)
// so switching models and back never re-invokes the LLM for a pair it has
// already answered. Safe for concurrent callers.
type ExtractionCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*models.ExtractedRecord
}

func NewExtractionCache() *ExtractionCache {
	return &ExtractionCache{entries: make(map[cacheKey]*models.ExtractedRecord)}
}

// CacheKey derives the content half of the key from the raw upload bytes.
func CacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (c *ExtractionCache) Get(digest, model string) (*models.ExtractedRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.entries[cacheKey{digest: digest, model: model}]
	return record, ok
}

func (c *ExtractionCache) Put(digest, model string, record *models.ExtractedRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{digest: digest, model: model}] = record
}

// Invalidate drops every cached result for the given content digest.
func (c *ExtractionCache) Invalidate(digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.digest == digest {
			delete(c.entries, key)
		}
	}
}
