package extract

import (
	"testing"
	"time"

	"clipper-app-api/core/domain"
)

func TestResultCache_PutGet(t *testing.T) {
	cache := NewResultCache(time.Minute)
	record := domain.ArticleRecord{Title: "Cached", SourceURL: "https://example.com/a"}

	cache.Put("https://example.com/a", record)

	got, ok := cache.Get("https://example.com/a")
	if !ok {
		t.Fatal("Get returned miss after Put")
	}
	if got.Title != "Cached" {
		t.Errorf("Title = %q, want Cached", got.Title)
	}
}

func TestResultCache_MissForUnknownURL(t *testing.T) {
	cache := NewResultCache(time.Minute)

	if _, ok := cache.Get("https://example.com/missing"); ok {
		t.Error("Get returned hit for URL never stored")
	}
}

func TestResultCache_Invalidate(t *testing.T) {
	cache := NewResultCache(time.Minute)
	cache.Put("https://example.com/a", domain.ArticleRecord{Title: "A"})

	cache.Invalidate("https://example.com/a")

	if _, ok := cache.Get("https://example.com/a"); ok {
		t.Error("entry survived Invalidate")
	}
}

func TestResultCache_Clear(t *testing.T) {
	cache := NewResultCache(time.Minute)
	cache.Put("https://example.com/a", domain.ArticleRecord{Title: "A"})
	cache.Put("https://example.com/b", domain.ArticleRecord{Title: "B"})

	cache.Clear()

	if _, ok := cache.Get("https://example.com/a"); ok {
		t.Error("entry a survived Clear")
	}
	if _, ok := cache.Get("https://example.com/b"); ok {
		t.Error("entry b survived Clear")
	}
}

func TestResultCache_Expiry(t *testing.T) {
	cache := NewResultCache(10 * time.Millisecond)
	cache.Put("https://example.com/a", domain.ArticleRecord{Title: "A"})

	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("https://example.com/a"); ok {
		t.Error("entry survived past its TTL")
	}
}
