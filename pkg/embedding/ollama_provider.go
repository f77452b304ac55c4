package embedding

import (
	"context"
	"math"
	"net/http"
)

// OllamaProvider implements Provider for local Ollama models (e.g., nomic-embed-text)
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaProvider(baseURL string, model string, client *http.Client) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OllamaProvider{
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
}

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

func (p *OllamaProvider) Model() string {
	return p.model
}

func (p *OllamaProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	var res ollamaEmbedResponse
	if err := PostJSON(ctx, p.client, "ollama", p.baseURL+"/api/embed", nil,
		ollamaEmbedRequest{Model: p.model, Input: texts}, &res); err != nil {
		return nil, err
	}
	if err := checkCount("ollama", len(texts), len(res.Embeddings)); err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, emb := range res.Embeddings {
		values := make([]float32, len(emb))
		for j, v := range emb {
			values[j] = float32(v)
		}
		vectors[i] = normalizeVector(values)
	}
	return vectors, nil
}

// normalizeVector normalizes a vector to unit length (magnitude = 1)
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
