package redisstore

import (
	"context"

	"style-match-be/internal/entity"
	"style-match-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type ProductStore struct {
	rdb *redis.Client
}

func NewProductStore(rdb *redis.Client) contract.ProductRepository {
	return &ProductStore{rdb: rdb}
}

func (s *ProductStore) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if _, err := getJSON(ctx, s.rdb, key("products"), &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

func (s *ProductStore) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	if products == nil {
		products = []*entity.Product{}
	}
	return setJSON(ctx, s.rdb, key("products"), products)
}
