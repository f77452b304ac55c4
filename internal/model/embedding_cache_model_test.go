package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestEmbeddingCacheEntry_UpdatedAtIsNotAutoStamped(t *testing.T) {
	s, err := schema.Parse(&EmbeddingCacheEntry{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("UpdatedAt")
	require.NotNil(t, field)
	assert.Zero(t, field.AutoUpdateTime)
	assert.Zero(t, field.AutoCreateTime)
}
