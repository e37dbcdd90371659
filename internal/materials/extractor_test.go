package materials

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho/tutorkit/internal/store"
)

type memoryCache struct {
	entries map[string]*store.CachedExtraction
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*store.CachedExtraction{}}
}

func (m *memoryCache) Get(_ context.Context, hash string) (*store.CachedExtraction, error) {
	if e, ok := m.entries[hash]; ok {
		return e, nil
	}
	return nil, store.ErrCacheMiss
}

func (m *memoryCache) Put(_ context.Context, hash string, payload []byte) error {
	m.puts++
	m.entries[hash] = &store.CachedExtraction{ContentHash: hash, Payload: payload, CreatedAt: time.Now()}
	return nil
}

func (m *memoryCache) Prune(_ context.Context, _ time.Duration) (int64, error) {
	return 0, nil
}

type stubExtractor struct {
	result Extraction
	err    error
	calls  int
}

func (s *stubExtractor) Extract(_ context.Context, _ Material) (Extraction, error) {
	s.calls++
	return s.result, s.err
}

func TestCachedExtractorCachesSuccess(t *testing.T) {
	inner := &stubExtractor{result: Extraction{Success: true, Text: "물은 100도에서 끓는다."}}
	cache := newMemoryCache()
	ex := NewCachedExtractor(inner, cache, nil)

	m := Material{Title: "물의 끓는점", URL: "https://example.com/boil"}

	first, err := ex.Extract(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, cache.puts)

	second, err := ex.Extract(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// Served from cache.
	assert.Equal(t, 1, inner.calls)
}

func TestCachedExtractorRefetchesStaleEntries(t *testing.T) {
	inner := &stubExtractor{result: Extraction{Success: true, Text: "최신 내용"}}
	cache := newMemoryCache()
	ex := NewCachedExtractor(inner, cache, nil)

	m := Material{Title: "자료", URL: "https://example.com/doc"}

	_, err := ex.Extract(context.Background(), m)
	require.NoError(t, err)

	// Age the entry past the validity window.
	hash := ContentHash(m.Locator())
	cache.entries[hash].CreatedAt = time.Now().Add(-DefaultCacheMaxAge - time.Hour)

	_, err = ex.Extract(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedExtractorSkipsFailedExtractions(t *testing.T) {
	inner := &stubExtractor{result: Extraction{Success: false, Error: "unsupported format"}}
	cache := newMemoryCache()
	ex := NewCachedExtractor(inner, cache, nil)

	got, err := ex.Extract(context.Background(), Material{Title: "이미지", FileName: "scan.png"})
	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Zero(t, cache.puts)
}

func TestCachedExtractorPropagatesErrors(t *testing.T) {
	inner := &stubExtractor{err: errors.New("network down")}
	ex := NewCachedExtractor(inner, newMemoryCache(), nil)

	_, err := ex.Extract(context.Background(), Material{Title: "자료", URL: "https://example.com"})
	assert.Error(t, err)
}

func TestContentHashIsStablePerLocator(t *testing.T) {
	a := Material{Title: "제목", URL: "https://example.com/a"}
	b := Material{Title: "다른 제목", URL: "https://example.com/a"}
	c := Material{Title: "제목", URL: "https://example.com/b"}

	assert.Equal(t, ContentHash(a.Locator()), ContentHash(b.Locator()))
	assert.NotEqual(t, ContentHash(a.Locator()), ContentHash(c.Locator()))

	// Files without a URL key off the file name.
	f := Material{Title: "업로드 자료", FileName: "doc.pdf"}
	assert.Equal(t, ContentHash("doc.pdf"), ContentHash(f.Locator()))
}
