package redisstore

import (
	"context"
	"os"
	"testing"

	"style-match-be/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: redis unreachable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisStores(t *testing.T) {
	rdb := newTestClient(t)
	ctx := context.Background()

	t.Run("pins replace wholesale", func(t *testing.T) {
		store := NewPinStore(rdb)
		board := "itest-board"
		t.Cleanup(func() { rdb.Del(ctx, key("pins", board)) })

		require.NoError(t, store.ReplaceBoard(ctx, board, []*entity.Pin{{PinId: "1"}, {PinId: "2"}}))
		require.NoError(t, store.ReplaceBoard(ctx, board, []*entity.Pin{{PinId: "3"}}))

		got, err := store.FindByBoard(ctx, board)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].PinId)
	})

	t.Run("embedding document round trip", func(t *testing.T) {
		store := NewEmbeddingCacheStore(rdb)
		scope := entity.EmbeddingScope("itest")
		t.Cleanup(func() { rdb.Del(ctx, key("embeddings", string(scope))) })

		doc := &entity.EmbeddingCacheDocument{
			Model: "m",
			Items: []entity.EmbeddingCacheEntry{{Id: "x", Text: "t", Embedding: []float32{1, 2}, Key: scope}},
		}
		require.NoError(t, store.Put(ctx, scope, doc))

		got, err := store.Get(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})
}
