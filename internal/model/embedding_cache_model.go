package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingCacheDocument is the header row of one cache scope.
type EmbeddingCacheDocument struct {
	Scope     string    `gorm:"type:varchar(20);primaryKey"`
	Model     string    `gorm:"type:varchar(100);not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EmbeddingCacheDocument) TableName() string {
	return "embedding_cache_documents"
}

type EmbeddingCacheEntry struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Scope     string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_scope_entity"`
	EntityId  string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_scope_entity"`
	Text      string          `gorm:"type:text;not null"`
	Embedding pgvector.Vector `gorm:"type:vector"`                   // dimension depends on the active model
	UpdatedAt int64           `gorm:"not null;autoUpdateTime:false"` // unix millis, stamped by the cache manager
}

func (EmbeddingCacheEntry) TableName() string {
	return "embedding_cache_entries"
}
