package implementation

import (
	"context"
	"fmt"

	"style-match-be/internal/entity"
	"style-match-be/internal/mapper"
	"style-match-be/internal/model"
	"style-match-be/internal/repository/contract"
	"style-match-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PinRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PinMapper
}

func NewPinRepository(db *gorm.DB) contract.PinRepository {
	return &PinRepositoryImpl{
		db:     db,
		mapper: mapper.NewPinMapper(),
	}
}

func (r *PinRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PinRepositoryImpl) ReplaceBoard(ctx context.Context, boardId string, pins []*entity.Pin) error {
	models := r.mapper.ToModels(pins)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.applySpecifications(tx, specification.ByBoardId{BoardId: boardId}).
			Delete(&model.Pin{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(models, 100).Error
	})
}

func (r *PinRepositoryImpl) FindByBoard(ctx context.Context, boardId string) ([]*entity.Pin, error) {
	var models []*model.Pin
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByBoardId{BoardId: boardId},
		specification.OrderBy{Field: "position"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PinRepositoryImpl) Location(boardId string) string {
	return fmt.Sprintf("postgres:%s?board_id=%s", model.Pin{}.TableName(), boardId)
}
