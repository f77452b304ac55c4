package filestore

import (
	"context"
	"fmt"
	"path/filepath"

	"style-match-be/internal/entity"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
)

type EmbeddingCacheStore struct {
	dir    string
	logger logger.ILogger
}

// NewEmbeddingCacheStore keeps dataDir/<scope>_embeddings.json per scope.
func NewEmbeddingCacheStore(dataDir string, log logger.ILogger) contract.EmbeddingCacheRepository {
	return &EmbeddingCacheStore{dir: dataDir, logger: log}
}

func (s *EmbeddingCacheStore) path(scope entity.EmbeddingScope) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_embeddings.json", scope))
}

func (s *EmbeddingCacheStore) Get(ctx context.Context, scope entity.EmbeddingScope) (*entity.EmbeddingCacheDocument, error) {
	var doc entity.EmbeddingCacheDocument
	found, err := readDocument(s.path(scope), &doc)
	if err != nil {
		// A corrupt cache is only a cold cache.
		s.logger.Warn("EMBEDDING_CACHE", "Ignoring unreadable cache document", map[string]interface{}{
			"scope": scope,
			"error": err.Error(),
		})
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &doc, nil
}

func (s *EmbeddingCacheStore) Put(ctx context.Context, scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) error {
	return writeDocument(s.path(scope), doc)
}
