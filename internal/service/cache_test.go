package service

import (
	"testing"

	"finextract/internal/models"
)

func TestExtractionCacheKeyedByDigestAndModel(t *testing.T) {
	cache := NewExtractionCache()
	digest := CacheKey([]byte("upload content"))
	record := &models.ExtractedRecord{DocumentType: models.DocumentTypeInvoice, VendorName: "Acme"}

	if _, ok := cache.Get(digest, "model-a"); ok {
		t.Fatal("empty cache reported a hit")
	}

	cache.Put(digest, "model-a", record)

	got, ok := cache.Get(digest, "model-a")
	if !ok {
		t.Fatal("expected hit for cached pair")
	}
	if got != record {
		t.Error("cache returned a different record")
	}

	// Same content extracted with a different model is a miss.
	if _, ok := cache.Get(digest, "model-b"); ok {
		t.Error("unexpected hit for a model that never ran")
	}

	// Different content with the same model is a miss.
	other := CacheKey([]byte("other content"))
	if _, ok := cache.Get(other, "model-a"); ok {
		t.Error("unexpected hit for different content")
	}
}

func TestExtractionCacheInvalidateDropsAllModels(t *testing.T) {
	cache := NewExtractionCache()
	digest := CacheKey([]byte("upload content"))
	keep := CacheKey([]byte("unrelated content"))
	record := &models.ExtractedRecord{DocumentType: models.DocumentTypeStatement}

	cache.Put(digest, "model-a", record)
	cache.Put(digest, "model-b", record)
	cache.Put(keep, "model-a", record)

	cache.Invalidate(digest)

	if _, ok := cache.Get(digest, "model-a"); ok {
		t.Error("model-a entry survived invalidation")
	}
	if _, ok := cache.Get(digest, "model-b"); ok {
		t.Error("model-b entry survived invalidation")
	}
	if _, ok := cache.Get(keep, "model-a"); !ok {
		t.Error("invalidation dropped an unrelated digest")
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := CacheKey([]byte("same bytes"))
	b := CacheKey([]byte("same bytes"))
	if a != b {
		t.Errorf("same content produced different keys: %q vs %q", a, b)
	}
	if a == CacheKey([]byte("different bytes")) {
		t.Error("different content produced the same key")
	}
}
