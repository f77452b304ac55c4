package mapper

import (
	"style-match-be/internal/entity"
	"style-match-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type EmbeddingCacheMapper struct{}

func NewEmbeddingCacheMapper() *EmbeddingCacheMapper {
	return &EmbeddingCacheMapper{}
}

func (m *EmbeddingCacheMapper) ToEntity(header *model.EmbeddingCacheDocument, rows []*model.EmbeddingCacheEntry) *entity.EmbeddingCacheDocument {
	if header == nil {
		return nil
	}

	items := make([]entity.EmbeddingCacheEntry, 0, len(rows))
	for _, r := range rows {
		items = append(items, entity.EmbeddingCacheEntry{
			Id:        r.EntityId,
			Text:      r.Text,
			Embedding: r.Embedding.Slice(),
			UpdatedAt: r.UpdatedAt,
			Key:       entity.EmbeddingScope(r.Scope),
		})
	}

	return &entity.EmbeddingCacheDocument{
		Model: header.Model,
		Items: items,
	}
}

func (m *EmbeddingCacheMapper) ToModels(scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) (*model.EmbeddingCacheDocument, []*model.EmbeddingCacheEntry) {
	header := &model.EmbeddingCacheDocument{
		Scope: string(scope),
		Model: doc.Model,
	}

	rows := make([]*model.EmbeddingCacheEntry, 0, len(doc.Items))
	for _, item := range doc.Items {
		rows = append(rows, &model.EmbeddingCacheEntry{
			Scope:     string(scope),
			EntityId:  item.Id,
			Text:      item.Text,
			Embedding: pgvector.NewVector(item.Embedding),
			UpdatedAt: item.UpdatedAt,
		})
	}
	return header, rows
}
