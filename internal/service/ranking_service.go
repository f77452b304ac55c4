package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"style-match-be/internal/dto"
	"style-match-be/internal/entity"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
	"style-match-be/pkg/embedcache"
	"style-match-be/pkg/events"
	"style-match-be/pkg/pintext"
	"style-match-be/pkg/ranking"
	"style-match-be/pkg/vector"
)

const (
	DefaultTopK = 24
	MaxTopK     = 100
)

// EmbeddingCache is what ranking needs from the embedding cache manager.
type EmbeddingCache interface {
	Model() string
	EnsureEmbeddings(ctx context.Context, scope entity.EmbeddingScope, entities []embedcache.Entity) ([]entity.EmbeddingCacheEntry, error)
}

type IRankingService interface {
	RankProducts(ctx context.Context, boardId string, topK int) (*dto.RankProductsResponse, error)
	// WarmBoard computes missing pin vectors of a board ahead of ranking.
	WarmBoard(ctx context.Context, boardId string) error
}

type rankingService struct {
	missingConfig []string
	pins          contract.PinRepository
	products      contract.ProductRepository
	cache         EmbeddingCache
	publisher     IPublisherService
	metrics       *observability.Collector
	logger        logger.ILogger
}

// NewRankingService builds the service. missingConfig lists unset embedding
// settings; while non-empty every call fails before touching the provider.
func NewRankingService(
	missingConfig []string,
	pins contract.PinRepository,
	products contract.ProductRepository,
	cache EmbeddingCache,
	publisher IPublisherService,
	metrics *observability.Collector,
	log logger.ILogger,
) IRankingService {
	return &rankingService{
		missingConfig: missingConfig,
		pins:          pins,
		products:      products,
		cache:         cache,
		publisher:     publisher,
		metrics:       metrics,
		logger:        log,
	}
}

// ResolveTopK turns a client supplied topK into 1..100, 0 meaning 24.
func ResolveTopK(raw float64) int {
	if raw == 0 || math.IsNaN(raw) {
		return DefaultTopK
	}
	return clampFloat(raw, 1, MaxTopK)
}

func (s *rankingService) checkConfig() error {
	if len(s.missingConfig) == 0 {
		return nil
	}
	return apperror.Config(fmt.Sprintf("Missing %s in .env", s.missingConfig[0]), s.missingConfig...)
}

func (s *rankingService) usablePins(ctx context.Context, boardId string) ([]embedcache.Entity, error) {
	pins, err := s.pins.FindByBoard(ctx, boardId)
	if err != nil {
		return nil, fmt.Errorf("failed to load pins of board %s: %w", boardId, err)
	}

	entities := make([]embedcache.Entity, 0, len(pins))
	for _, p := range pins {
		if p.BoardId == boardId && p.UsableForEmbedding && p.EmbeddingText != "" {
			entities = append(entities, embedcache.Entity{ID: p.PinId, Text: p.EmbeddingText})
		}
	}
	return entities, nil
}

func (s *rankingService) RankProducts(ctx context.Context, boardId string, topK int) (*dto.RankProductsResponse, error) {
	if err := s.checkConfig(); err != nil {
		return nil, err
	}
	if boardId == "" {
		return nil, apperror.Validation("boardId is required.")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	topK = clamp(topK, 1, MaxTopK)

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) == 0 {
		return nil, apperror.InsufficientSignal("No products found in the product catalog.", "")
	}

	pinEntities, err := s.usablePins(ctx, boardId)
	if err != nil {
		return nil, err
	}
	if len(pinEntities) == 0 {
		return nil, apperror.InsufficientSignal(
			"No usable pins found for embedding on this board.",
			"Try importing another board or enriching pin text fields.",
		)
	}

	productById := make(map[string]*entity.Product, len(products))
	productEntities := make([]embedcache.Entity, 0, len(products))
	for _, p := range products {
		text := pintext.ProductText(p.Name, p.Brand, p.Category, p.Tags)
		if text == "" {
			continue
		}
		if _, dup := productById[p.Id]; dup {
			continue
		}
		productById[p.Id] = p
		productEntities = append(productEntities, embedcache.Entity{ID: p.Id, Text: text})
	}
	if len(productEntities) == 0 {
		return nil, apperror.InsufficientSignal("No usable products for embedding.", "")
	}

	pinEntries, err := s.cache.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, pinEntities)
	if err != nil {
		return nil, fmt.Errorf("embed pins: %w", err)
	}
	productEntries, err := s.cache.EnsureEmbeddings(ctx, entity.EmbeddingScopeProduct, productEntities)
	if err != nil {
		return nil, fmt.Errorf("embed products: %w", err)
	}

	pinVectors := make([][]float32, 0, len(pinEntries))
	for _, e := range pinEntries {
		if len(e.Embedding) > 0 {
			pinVectors = append(pinVectors, e.Embedding)
		}
	}
	if len(pinVectors) == 0 {
		return nil, apperror.Internal("No pin embeddings available after embedding step.", nil)
	}
	profile := vector.Mean(pinVectors)

	vectorById := make(map[string][]float32, len(productEntries))
	for _, e := range productEntries {
		vectorById[e.Id] = e.Embedding
	}
	candidates := make([]ranking.Candidate, 0, len(productEntities))
	for _, e := range productEntities {
		if vec, ok := vectorById[e.ID]; ok {
			candidates = append(candidates, ranking.Candidate{ID: e.ID, Embedding: vec})
		}
	}

	scored := ranking.Rank(profile, candidates, topK)
	ranked := make([]dto.RankedProduct, 0, len(scored))
	for _, sc := range scored {
		ranked = append(ranked, dto.RankedProduct{Product: *productById[sc.ID], Score: sc.Score})
	}

	res := &dto.RankProductsResponse{
		BoardId:        boardId,
		PinsUsed:       len(pinVectors),
		ProductsRanked: len(ranked),
		Model:          s.cache.Model(),
		RankedProducts: ranked,
	}

	if s.metrics != nil {
		s.metrics.RankingsServed.Inc()
	}
	s.logger.Info("RANKING", "Products ranked", map[string]interface{}{
		"boardId":        boardId,
		"pinsUsed":       res.PinsUsed,
		"productsRanked": res.ProductsRanked,
		"model":          res.Model,
	})

	evt := events.BaseEvent{
		Type: events.ProductsRanked,
		Data: map[string]interface{}{
			"boardId":        boardId,
			"pinsUsed":       res.PinsUsed,
			"productsRanked": res.ProductsRanked,
			"model":          res.Model,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("RANKING", "Failed to publish event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}

	return res, nil
}

func (s *rankingService) WarmBoard(ctx context.Context, boardId string) error {
	if err := s.checkConfig(); err != nil {
		return err
	}
	pinEntities, err := s.usablePins(ctx, boardId)
	if err != nil {
		return err
	}
	if len(pinEntities) == 0 {
		return nil
	}

	entries, err := s.cache.EnsureEmbeddings(ctx, entity.EmbeddingScopePin, pinEntities)
	if err != nil {
		return fmt.Errorf("warm pins of board %s: %w", boardId, err)
	}
	s.logger.Info("RANKING", "Board embeddings warmed", map[string]interface{}{
		"boardId": boardId,
		"pins":    len(entries),
	})
	return nil
}
