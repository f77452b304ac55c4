package embedcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-match-be/internal/entity"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/logger"
)

type memoryStore struct {
	mu   sync.Mutex
	docs map[entity.EmbeddingScope]*entity.EmbeddingCacheDocument
	puts int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[entity.EmbeddingScope]*entity.EmbeddingCacheDocument{}}
}

func (s *memoryStore) Get(_ context.Context, scope entity.EmbeddingScope) (*entity.EmbeddingCacheDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[scope]
	if !ok {
		return nil, nil
	}
	cp := *doc
	cp.Items = append([]entity.EmbeddingCacheEntry(nil), doc.Items...)
	return &cp, nil
}

func (s *memoryStore) Put(_ context.Context, scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	cp.Items = append([]entity.EmbeddingCacheEntry(nil), doc.Items...)
	s.docs[scope] = &cp
	s.puts++
	return nil
}

type countingProvider struct {
	model   string
	calls   int
	batches [][]string
	failOn  int // 1-based call number that fails, 0 = never
}

func (p *countingProvider) Model() string { return p.model }

func (p *countingProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	p.calls++
	p.batches = append(p.batches, texts)
	if p.failOn == p.calls {
		return nil, errors.New("provider down")
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t)), float32(p.calls)}
	}
	return out, nil
}

func fixedClock() time.Time { return time.UnixMilli(1700000000000) }

func newTestManager(store *memoryStore, provider *countingProvider, opts ...Option) *Manager {
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return NewManager(store, provider, logger.NewNopLogger(), opts...)
}

func TestEnsureEmbeddings_SecondRunIsFullyCached(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1"}
	m := newTestManager(store, provider)
	ctx := context.Background()

	entities := []Entity{{ID: "a", Text: "linen shirt"}, {ID: "b", Text: "wool coat"}}

	first, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, provider.calls)

	second, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls, "no provider call expected on a warm cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.puts, "nothing to persist without misses")
}

func TestEnsureEmbeddings_ChangedTextIsAMiss(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1"}
	m := newTestManager(store, provider)
	ctx := context.Background()

	_, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, []Entity{{ID: "p1", Text: "boho dress"}, {ID: "p2", Text: "straw hat"}})
	require.NoError(t, err)

	entries, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, []Entity{{ID: "p1", Text: "boho maxi dress"}, {ID: "p2", Text: "straw hat"}})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 2, provider.calls)
	assert.Equal(t, []string{"boho maxi dress"}, provider.batches[1])
	assert.Equal(t, "boho maxi dress", entries[0].Text)
	assert.Equal(t, float32(2), entries[0].Embedding[1])
	assert.Equal(t, float32(1), entries[1].Embedding[1])
}

func TestEnsureEmbeddings_ModelChangeStartsCold(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	entities := []Entity{{ID: "a", Text: "denim jacket"}}

	_, err := newTestManager(store, &countingProvider{model: "old"}).EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)

	next := &countingProvider{model: "new"}
	entries, err := newTestManager(store, next).EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, next.calls)

	doc, err := store.Get(ctx, entity.EmbeddingScopeProduct)
	require.NoError(t, err)
	assert.Equal(t, "new", doc.Model)
	assert.Len(t, doc.Items, 1)
}

func TestEnsureEmbeddings_FailedBatchKeepsEarlierBatches(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1", failOn: 2}
	m := newTestManager(store, provider, WithBatchSize(2))
	ctx := context.Background()

	entities := []Entity{
		{ID: "1", Text: "one"}, {ID: "2", Text: "two"},
		{ID: "3", Text: "three"}, {ID: "4", Text: "four"},
	}

	_, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, entities)
	require.Error(t, err)
	assert.Equal(t, 2, provider.calls)

	doc, err := store.Get(ctx, entity.EmbeddingScopePin)
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "1", doc.Items[0].Id)
	assert.Equal(t, "2", doc.Items[1].Id)
	assert.Equal(t, int64(1700000000000), doc.Items[0].UpdatedAt)
	assert.Equal(t, entity.EmbeddingScopePin, doc.Items[0].Key)

	// retry only sends what is still missing
	provider.failOn = 0
	entries, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, entities)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.Equal(t, []string{"three", "four"}, provider.batches[2])
}

func TestEnsureEmbeddings_SameTextDistinctIds(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1"}
	m := newTestManager(store, provider)

	entries, err := m.EnsureEmbeddings(context.Background(), entity.EmbeddingScopePin, []Entity{
		{ID: "x", Text: "same words here"},
		{ID: "y", Text: "same words here"},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "x", entries[0].Id)
	assert.Equal(t, "y", entries[1].Id)
	assert.Len(t, provider.batches[0], 2)
}

func TestEnsureEmbeddings_ReturnsOnlyRequestedEntities(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1"}
	m := newTestManager(store, provider)
	ctx := context.Background()

	_, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, []Entity{{ID: "a", Text: "aa"}, {ID: "b", Text: "bb"}})
	require.NoError(t, err)

	entries, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, []Entity{{ID: "b", Text: "bb"}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Id)

	doc, _ := store.Get(ctx, entity.EmbeddingScopeProduct)
	assert.Len(t, doc.Items, 2)
}

func TestEnsureEmbeddings_CountsHitsAndMisses(t *testing.T) {
	store := newMemoryStore()
	provider := &countingProvider{model: "m1"}
	metrics := observability.NewCollector("test")
	m := newTestManager(store, provider, WithMetrics(metrics))
	ctx := context.Background()
	entities := []Entity{{ID: "a", Text: "aa"}, {ID: "b", Text: "bb"}}

	_, err := m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)
	_, err = m.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, entities)
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CacheHits.WithLabelValues("product")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CacheMisses.WithLabelValues("product")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ProviderBatches.WithLabelValues("product", "ok")))
}
