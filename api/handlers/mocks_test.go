package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
)

// mockExtractionService implements interfaces.ExtractionService.
type mockExtractionService struct {
	ExtractFunc func(ctx context.Context, snapshot domain.PageSnapshot, opts interfaces.ExtractionOptions) domain.ArticleRecord
	calls       int
}

func (m *mockExtractionService) Extract(ctx context.Context, snapshot domain.PageSnapshot, opts interfaces.ExtractionOptions) domain.ArticleRecord {
	m.calls++
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, snapshot, opts)
	}
	return domain.ArticleRecord{}
}

// mockFetcher implements interfaces.SnapshotFetcher.
type mockFetcher struct {
	FetchFunc func(ctx context.Context, pageURL string) (domain.PageSnapshot, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, pageURL string) (domain.PageSnapshot, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, pageURL)
	}
	return domain.PageSnapshot{}, errors.New("no fetch configured")
}

// mockInliner implements interfaces.ImageInliner.
type mockInliner struct {
	InlineFunc func(ctx context.Context, record *domain.ArticleRecord)
}

func (m *mockInliner) InlineTopImage(ctx context.Context, record *domain.ArticleRecord) {
	if m.InlineFunc != nil {
		m.InlineFunc(ctx, record)
	}
}

// mockCache implements interfaces.Cache with an in-memory map.
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger discards all log output.
type mockLogger struct{}

func (mockLogger) Debug(string, map[string]interface{}) {}
func (mockLogger) Info(string, map[string]interface{})  {}
func (mockLogger) Warn(string, map[string]interface{})  {}
func (mockLogger) Error(string, map[string]interface{}) {}
