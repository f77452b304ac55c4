package mapper

import (
	"style-match-be/internal/entity"
	"style-match-be/internal/model"

	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:         p.Id,
		Name:       p.Name,
		Brand:      p.Brand,
		Category:   p.Category,
		Tags:       []string(p.Tags),
		Price:      p.Price,
		ProductUrl: p.ProductUrl,
		ImageUrl:   p.ImageUrl,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product, position int) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:         p.Id,
		Position:   position,
		Name:       p.Name,
		Brand:      p.Brand,
		Category:   p.Category,
		Tags:       datatypes.JSONSlice[string](p.Tags),
		Price:      p.Price,
		ProductUrl: p.ProductUrl,
		ImageUrl:   p.ImageUrl,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
