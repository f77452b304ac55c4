package implementation

import (
	"context"
	"errors"

	"style-match-be/internal/entity"
	"style-match-be/internal/mapper"
	"style-match-be/internal/model"
	"style-match-be/internal/repository/contract"
	"style-match-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmbeddingCacheRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmbeddingCacheMapper
}

func NewEmbeddingCacheRepository(db *gorm.DB) contract.EmbeddingCacheRepository {
	return &EmbeddingCacheRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmbeddingCacheMapper(),
	}
}

func (r *EmbeddingCacheRepositoryImpl) Get(ctx context.Context, scope entity.EmbeddingScope) (*entity.EmbeddingCacheDocument, error) {
	var header model.EmbeddingCacheDocument
	err := r.db.WithContext(ctx).Where("scope = ?", string(scope)).First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var rows []*model.EmbeddingCacheEntry
	query := specification.ByScope{Scope: string(scope)}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&header, rows), nil
}

// Put rewrites the scope's header and entries in one transaction so readers never
// observe a half-written document.
func (r *EmbeddingCacheRepositoryImpl) Put(ctx context.Context, scope entity.EmbeddingScope, doc *entity.EmbeddingCacheDocument) error {
	header, rows := r.mapper.ToModels(scope, doc)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"model", "updated_at"}),
		}).Create(header).Error; err != nil {
			return err
		}

		byScope := specification.ByScope{Scope: string(scope)}
		if err := byScope.Apply(tx).Delete(&model.EmbeddingCacheEntry{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}
