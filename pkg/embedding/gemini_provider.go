package embedding

import (
	"context"
	"fmt"
	"net/http"
)

const defaultGeminiModel = "text-embedding-004"

type GeminiProvider struct {
	apiKey   string
	model    string
	taskType string
	client   *http.Client
}

type geminiContentPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiContentPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model    string        `json:"model"`
	Content  geminiContent `json:"content"`
	TaskType string        `json:"taskType,omitempty"`
}

type geminiBatchRequest struct {
	Requests []geminiEmbedRequest `json:"requests"`
}

type geminiBatchResponse struct {
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
}

func NewGeminiProvider(apiKey string, client *http.Client) *GeminiProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiProvider{
		apiKey:   apiKey,
		model:    defaultGeminiModel,
		taskType: "SEMANTIC_SIMILARITY",
		client:   client,
	}
}

func (p *GeminiProvider) Model() string {
	return p.model
}

func (p *GeminiProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	modelPath := "models/" + p.model
	req := geminiBatchRequest{Requests: make([]geminiEmbedRequest, len(texts))}
	for i, text := range texts {
		req.Requests[i] = geminiEmbedRequest{
			Model:    modelPath,
			Content:  geminiContent{Parts: []geminiContentPart{{Text: text}}},
			TaskType: p.taskType,
		}
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:batchEmbedContents",
		p.model,
	)

	var res geminiBatchResponse
	if err := PostJSON(ctx, p.client, "gemini", endpoint,
		map[string]string{"x-goog-api-key": p.apiKey}, req, &res); err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		vectors[i] = e.Values
	}
	if err := checkCount("gemini", len(texts), len(vectors)); err != nil {
		return nil, err
	}
	return vectors, nil
}
