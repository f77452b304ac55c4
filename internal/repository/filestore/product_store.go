package filestore

import (
	"context"

	"style-match-be/internal/entity"
	"style-match-be/internal/repository/contract"
)

type ProductStore struct {
	path string
}

// NewProductStore reads the catalog from a single JSON array document.
func NewProductStore(path string) contract.ProductRepository {
	return &ProductStore{path: path}
}

func (s *ProductStore) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if _, err := readDocument(s.path, &products); err != nil {
		return nil, err
	}

	kept := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (s *ProductStore) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	if products == nil {
		products = []*entity.Product{}
	}
	return writeDocument(s.path, products)
}
