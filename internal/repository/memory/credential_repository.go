package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"style-match-be/internal/entity"
)

const activeCredentialKey = "pinterest:active"

type CredentialRepository struct {
	cache *cache.Cache
}

func NewCredentialRepository() *CredentialRepository {
	// Items never expire by default; purge expired tokens every 10 minutes
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &CredentialRepository{
		cache: c,
	}
}

func (r *CredentialRepository) Save(credential *entity.PinterestCredential) {
	ttl := cache.NoExpiration
	if credential.ExpiresIn > 0 {
		ttl = time.Duration(credential.ExpiresIn) * time.Second
	}
	r.cache.Set(activeCredentialKey, credential, ttl)
}

func (r *CredentialRepository) Active() (*entity.PinterestCredential, bool) {
	if x, found := r.cache.Get(activeCredentialKey); found {
		return x.(*entity.PinterestCredential), true
	}
	return nil, false
}

func (r *CredentialRepository) Clear() {
	r.cache.Delete(activeCredentialKey)
}
