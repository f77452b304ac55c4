package implementation

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"style-match-be/internal/entity"
	"style-match-be/internal/model"
	"style-match-be/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error)
	require.NoError(t, db.AutoMigrate(&model.Pin{}, &model.Product{}, &model.EmbeddingCacheDocument{}, &model.EmbeddingCacheEntry{}))
	return db
}

func TestGormPinRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewPinRepository(db)
	ctx := context.Background()
	boardId := "integration-board"

	first := []*entity.Pin{
		{PinId: "p1", BoardId: boardId, Title: "Linen shirt", EmbeddingText: "Linen shirt", UsableForEmbedding: true, TextQuality: "usable"},
		{PinId: "p2", BoardId: boardId, Title: "New design", EmbeddingText: "New design", TextQuality: "low_signal"},
	}
	require.NoError(t, repo.ReplaceBoard(ctx, boardId, first))

	got, err := repo.FindByBoard(ctx, boardId)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].PinId)
	assert.True(t, got[0].UsableForEmbedding)

	require.NoError(t, repo.ReplaceBoard(ctx, boardId, first[1:]))
	got, err = repo.FindByBoard(ctx, boardId)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].PinId)

	require.NoError(t, repo.ReplaceBoard(ctx, boardId, nil))
}

func TestGormProductRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	products := []*entity.Product{
		{Id: "b", Name: "Boho rug", Tags: []string{"boho"}, Price: 99},
		{Id: "a", Name: "Linen shirt", Tags: []string{"linen", "shirt"}, Price: 49.5},
	}
	require.NoError(t, repo.ReplaceAll(ctx, products))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Id)
	assert.Equal(t, []string{"linen", "shirt"}, got[1].Tags)
}

func TestGormEmbeddingCacheRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmbeddingCacheRepository(db)
	ctx := context.Background()

	doc := &entity.EmbeddingCacheDocument{
		Model: "test-model",
		Items: []entity.EmbeddingCacheEntry{
			{Id: "a", Text: "alpha", Embedding: []float32{1, 0, 0}, UpdatedAt: 1767225600123},
		},
	}
	require.NoError(t, repo.Put(ctx, entity.EmbeddingScopeProduct, doc))

	got, err := repo.Get(ctx, entity.EmbeddingScopeProduct)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Items, 1)
	assert.Equal(t, []float32{1, 0, 0}, got.Items[0].Embedding)
	assert.Equal(t, int64(1767225600123), got.Items[0].UpdatedAt)

	doc.Model = "other-model"
	doc.Items = nil
	require.NoError(t, repo.Put(ctx, entity.EmbeddingScopeProduct, doc))
	got, err = repo.Get(ctx, entity.EmbeddingScopeProduct)
	require.NoError(t, err)
	assert.Equal(t, "other-model", got.Model)
	assert.Empty(t, got.Items)
}
