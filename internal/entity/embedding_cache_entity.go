package entity

// EmbeddingScope separates pin vectors from product vectors.
type EmbeddingScope string

const (
	EmbeddingScopePin     EmbeddingScope = "pin"
	EmbeddingScopeProduct EmbeddingScope = "product"
)

type EmbeddingCacheEntry struct {
	Id        string         `json:"id"`
	Text      string         `json:"text"`
	Embedding []float32      `json:"embedding"`
	UpdatedAt int64          `json:"updatedAt"` // unix millis
	Key       EmbeddingScope `json:"key"`
}

// EmbeddingCacheDocument is the whole cache of one scope. Its vectors are only
// comparable with vectors produced by the same Model.
type EmbeddingCacheDocument struct {
	Model string                `json:"model"`
	Items []EmbeddingCacheEntry `json:"items"`
}
