package implementation

import (
	"context"

	"style-match-be/internal/entity"
	"style-match-be/internal/mapper"
	"style-match-be/internal/model"
	"style-match-be/internal/repository/contract"
	"style-match-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var models []*model.Product
	query := specification.OrderBy{Field: "position"}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	models := make([]*model.Product, 0, len(products))
	for i, p := range products {
		models = append(models, r.mapper.ToModel(p, i))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(models, 100).Error
	})
}
