package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-match-be/internal/entity"
)

func TestCredentialRepository_SaveAndClear(t *testing.T) {
	repo := NewCredentialRepository()

	_, ok := repo.Active()
	assert.False(t, ok)

	repo.Save(&entity.PinterestCredential{AccessToken: "tok", Scope: "boards:read"})
	cred, ok := repo.Active()
	require.True(t, ok)
	assert.Equal(t, "tok", cred.AccessToken)

	repo.Clear()
	_, ok = repo.Active()
	assert.False(t, ok)
}

func TestCredentialRepository_ExpiresAfterExpiresIn(t *testing.T) {
	repo := NewCredentialRepository()
	repo.Save(&entity.PinterestCredential{AccessToken: "short", ExpiresIn: 1})

	_, ok := repo.Active()
	require.True(t, ok)

	time.Sleep(1100 * time.Millisecond)
	_, ok = repo.Active()
	assert.False(t, ok)
}

func TestCredentialRepository_LatestWins(t *testing.T) {
	repo := NewCredentialRepository()
	repo.Save(&entity.PinterestCredential{AccessToken: "first"})
	repo.Save(&entity.PinterestCredential{AccessToken: "second"})

	cred, ok := repo.Active()
	require.True(t, ok)
	assert.Equal(t, "second", cred.AccessToken)
}
