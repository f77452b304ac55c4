package contract

import (
	"context"

	"style-match-be/internal/entity"
)

type ProductRepository interface {
	// FindAll returns the catalog in catalog order.
	FindAll(ctx context.Context) ([]*entity.Product, error)
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
