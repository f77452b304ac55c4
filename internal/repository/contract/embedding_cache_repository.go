package contract

import (
	"context"

	"style-match-be/internal/entity"
)

// EmbeddingCacheRepository stores one whole cache document per scope.
// Get returns (nil, nil) when nothing has been stored yet.
type EmbeddingCacheRepository interface {
	Get(ctx context.Context, scope entity.EmbeddingScope) (*entity.EmbeddingCacheDocument, error)
	Put(ctx context.Context, scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) error
}
