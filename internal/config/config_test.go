package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "")
	t.Setenv("PINTEREST_SCOPES", "boards:read, pins:read")
	t.Setenv("EMBEDDING_BATCH_SIZE", "notanumber")
	t.Setenv("EMBED_WARMUP_ON_IMPORT", "true")
	t.Setenv("DATA_DIR", "/tmp/sm")

	cfg := Load()

	assert.Equal(t, []string{"boards:read", "pins:read"}, cfg.Pinterest.Scopes)
	assert.Equal(t, 50, cfg.Ai.EmbeddingBatchSize)
	assert.True(t, cfg.Ai.EmbedWarmupOnImport)
	assert.Equal(t, "/tmp/sm/products.json", cfg.Store.ProductsFile)
}

func TestOAuthMissing(t *testing.T) {
	cfg := &Config{Pinterest: PinterestConfig{ClientID: "id"}}
	assert.Equal(t, []string{"PINTEREST_CLIENT_SECRET", "PINTEREST_REDIRECT_URI"}, cfg.OAuthMissing())

	cfg.Pinterest.ClientSecret = "s"
	cfg.Pinterest.RedirectURI = "http://x/cb"
	assert.Empty(t, cfg.OAuthMissing())
}

func TestEmbeddingMissing(t *testing.T) {
	tests := []struct {
		provider string
		keys     APIKeys
		want     []string
	}{
		{provider: "openai", want: []string{"OPENAI_API_KEY"}},
		{provider: "", keys: APIKeys{OpenAI: "k"}, want: nil},
		{provider: "jina", want: []string{"JINA_API_KEY"}},
		{provider: "gemini", keys: APIKeys{GoogleGemini: "k"}, want: nil},
		{provider: "ollama", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &Config{Ai: AIConfig{EmbeddingProvider: tt.provider}, Keys: tt.keys}
			assert.Equal(t, tt.want, cfg.EmbeddingMissing())
		})
	}
}
