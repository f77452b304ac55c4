package embedding

import (
	"context"
	"net/http"
	"sort"
)

const defaultOpenAIModel = "text-embedding-3-small"

// OpenAIProvider calls the OpenAI /v1/embeddings endpoint with the whole batch at once.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type openAIEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func NewOpenAIProvider(apiKey, baseURL, model string, client *http.Client) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
}

func (p *OpenAIProvider) Model() string {
	return p.model
}

func (p *OpenAIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	var res openAIEmbeddingResponse
	err := PostJSON(ctx, p.client, "openai", p.baseURL+"/embeddings",
		map[string]string{"Authorization": "Bearer " + p.apiKey},
		openAIEmbeddingRequest{Model: p.model, Input: texts},
		&res,
	)
	if err != nil {
		return nil, err
	}

	// data is documented to follow input order; sort by index anyway.
	sort.SliceStable(res.Data, func(i, j int) bool { return res.Data[i].Index < res.Data[j].Index })

	vectors := make([][]float32, len(res.Data))
	for i, d := range res.Data {
		vectors[i] = d.Embedding
	}
	if err := checkCount("openai", len(texts), len(vectors)); err != nil {
		return nil, err
	}
	return vectors, nil
}
