package jina

import (
	"context"
	"fmt"
	"net/http"

	"style-match-be/pkg/embedding"
)

type JinaProvider struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func NewJinaProvider(apiKey string, client *http.Client) *JinaProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &JinaProvider{
		apiKey:   apiKey,
		endpoint: "https://api.jina.ai/v1/embeddings",
		model:    "jina-embeddings-v2-base-en",
		client:   client,
	}
}

func (p *JinaProvider) Model() string {
	return p.model
}

// Embed sends the whole batch; Jina accepts an input array natively.
func (p *JinaProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	var res embeddingResponse
	err := embedding.PostJSON(ctx, p.client, "jina", p.endpoint,
		map[string]string{"Authorization": fmt.Sprintf("Bearer %s", p.apiKey)},
		embeddingRequest{Model: p.model, Input: texts},
		&res,
	)
	if err != nil {
		return nil, err
	}

	if len(res.Data) != len(texts) {
		return nil, fmt.Errorf("jina returned %d embeddings for %d inputs", len(res.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range res.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("jina returned out-of-range index %d", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
