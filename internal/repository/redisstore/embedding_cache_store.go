package redisstore

import (
	"context"

	"style-match-be/internal/entity"
	"style-match-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type EmbeddingCacheStore struct {
	rdb *redis.Client
}

func NewEmbeddingCacheStore(rdb *redis.Client) contract.EmbeddingCacheRepository {
	return &EmbeddingCacheStore{rdb: rdb}
}

func (s *EmbeddingCacheStore) Get(ctx context.Context, scope entity.EmbeddingScope) (*entity.EmbeddingCacheDocument, error) {
	var doc entity.EmbeddingCacheDocument
	found, err := getJSON(ctx, s.rdb, key("embeddings", string(scope)), &doc)
	if err != nil || !found {
		return nil, err
	}
	return &doc, nil
}

func (s *EmbeddingCacheStore) Put(ctx context.Context, scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) error {
	return setJSON(ctx, s.rdb, key("embeddings", string(scope)), doc)
}
