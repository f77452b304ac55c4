package redisstore

import (
	"context"

	"style-match-be/internal/entity"
	"style-match-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type PinStore struct {
	rdb *redis.Client
}

func NewPinStore(rdb *redis.Client) contract.PinRepository {
	return &PinStore{rdb: rdb}
}

func (s *PinStore) ReplaceBoard(ctx context.Context, boardId string, pins []*entity.Pin) error {
	if pins == nil {
		pins = []*entity.Pin{}
	}
	return setJSON(ctx, s.rdb, key("pins", boardId), pins)
}

func (s *PinStore) FindByBoard(ctx context.Context, boardId string) ([]*entity.Pin, error) {
	var pins []*entity.Pin
	if _, err := getJSON(ctx, s.rdb, key("pins", boardId), &pins); err != nil {
		return nil, err
	}
	if pins == nil {
		pins = []*entity.Pin{}
	}
	return pins, nil
}

func (s *PinStore) Location(boardId string) string {
	return "redis:" + key("pins", boardId)
}
