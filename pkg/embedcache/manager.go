package embedcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"style-match-be/internal/entity"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
	"style-match-be/pkg/embedding"
)

const DefaultBatchSize = 50

// Entity is anything that can be embedded: a stable id and its current text.
type Entity struct {
	ID   string
	Text string
}

type Manager struct {
	store     contract.EmbeddingCacheRepository
	provider  embedding.Provider
	batchSize int
	metrics   *observability.Collector
	logger    logger.ILogger
	now       func() time.Time

	mu     sync.Mutex
	scopes map[entity.EmbeddingScope]*sync.Mutex
}

type Option func(*Manager)

func WithBatchSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.batchSize = n
		}
	}
}

func WithMetrics(c *observability.Collector) Option {
	return func(m *Manager) { m.metrics = c }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store contract.EmbeddingCacheRepository, provider embedding.Provider, log logger.ILogger, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		provider:  provider,
		batchSize: DefaultBatchSize,
		logger:    log,
		now:       time.Now,
		scopes:    make(map[entity.EmbeddingScope]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Model is the model name stamped on every document this manager writes.
func (m *Manager) Model() string {
	return m.provider.Model()
}

func (m *Manager) lock(scope entity.EmbeddingScope) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.scopes[scope]
	if !ok {
		l = &sync.Mutex{}
		m.scopes[scope] = l
	}
	return l
}

// EnsureEmbeddings returns one entry per requested entity, computing vectors only
// for entities whose id has no cached vector for exactly the same text.
// Every successful provider batch is persisted before the next one starts, so a
// failure midway keeps the work already done.
func (m *Manager) EnsureEmbeddings(ctx context.Context, scope entity.EmbeddingScope, entities []Entity) ([]entity.EmbeddingCacheEntry, error) {
	l := m.lock(scope)
	l.Lock()
	defer l.Unlock()

	model := m.provider.Model()

	doc, err := m.store.Get(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("load %s embedding cache: %w", scope, err)
	}
	if doc == nil || doc.Model != model {
		if doc != nil {
			m.logger.Info("EMBED_CACHE", "Model changed, starting cold", map[string]interface{}{
				"scope":       scope,
				"cachedModel": doc.Model,
				"model":       model,
			})
		}
		doc = &entity.EmbeddingCacheDocument{Model: model}
	}

	byId := make(map[string]entity.EmbeddingCacheEntry, len(doc.Items))
	order := make([]string, 0, len(doc.Items))
	for _, item := range doc.Items {
		if _, seen := byId[item.Id]; !seen {
			order = append(order, item.Id)
		}
		byId[item.Id] = item
	}

	var misses []Entity
	for _, e := range entities {
		cached, ok := byId[e.ID]
		if ok && cached.Text == e.Text && len(cached.Embedding) > 0 {
			continue
		}
		misses = append(misses, e)
	}

	hits := len(entities) - len(misses)
	if m.metrics != nil {
		m.metrics.CacheHits.WithLabelValues(string(scope)).Add(float64(hits))
		m.metrics.CacheMisses.WithLabelValues(string(scope)).Add(float64(len(misses)))
	}
	m.logger.Debug("EMBED_CACHE", "Cache lookup", map[string]interface{}{
		"scope":  scope,
		"hits":   hits,
		"misses": len(misses),
	})

	for start := 0; start < len(misses); start += m.batchSize {
		end := start + m.batchSize
		if end > len(misses) {
			end = len(misses)
		}
		batch := misses[start:end]

		texts := make([]string, len(batch))
		for i, e := range batch {
			texts[i] = e.Text
		}

		began := m.now()
		vectors, err := m.provider.Embed(ctx, texts)
		m.observeBatch(scope, began, err)
		if err != nil {
			m.logger.Error("EMBED_CACHE", "Embedding batch failed", map[string]interface{}{
				"scope": scope,
				"batch": start / m.batchSize,
				"size":  len(batch),
				"error": err.Error(),
			})
			return nil, err
		}
		if len(vectors) != len(batch) {
			return nil, &embedding.ProviderError{
				Provider: model,
				Message:  fmt.Sprintf("expected %d embeddings, got %d", len(batch), len(vectors)),
			}
		}

		stamp := m.now().UnixMilli()
		for i, e := range batch {
			if _, seen := byId[e.ID]; !seen {
				order = append(order, e.ID)
			}
			byId[e.ID] = entity.EmbeddingCacheEntry{
				Id:        e.ID,
				Text:      e.Text,
				Embedding: vectors[i],
				UpdatedAt: stamp,
				Key:       scope,
			}
		}

		merged := &entity.EmbeddingCacheDocument{Model: model, Items: make([]entity.EmbeddingCacheEntry, 0, len(order))}
		for _, id := range order {
			merged.Items = append(merged.Items, byId[id])
		}
		if err := m.store.Put(ctx, scope, merged); err != nil {
			return nil, fmt.Errorf("persist %s embedding cache: %w", scope, err)
		}
	}

	result := make([]entity.EmbeddingCacheEntry, 0, len(entities))
	for _, e := range entities {
		if entry, ok := byId[e.ID]; ok && entry.Text == e.Text && len(entry.Embedding) > 0 {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (m *Manager) observeBatch(scope entity.EmbeddingScope, began time.Time, err error) {
	if m.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.metrics.ProviderBatches.WithLabelValues(string(scope), status).Inc()
	m.metrics.ProviderLatency.WithLabelValues(string(scope)).Observe(m.now().Sub(began).Seconds())
}
