package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Provider turns a batch of texts into vectors, one per input and in input order.
type Provider interface {
	// Model identifies the embedding function version; vectors of different models
	// are not comparable.
	Model() string
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ProviderError is a non-success answer from an embedding API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s embedding error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s embedding error (status %d)", e.Provider, e.StatusCode)
}

// PostJSON sends body as JSON and decodes a 2xx answer into out. Non-2xx answers
// become *ProviderError.
func PostJSON(ctx context.Context, client *http.Client, provider, endpoint string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	resBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newProviderError(provider, resp.StatusCode, resBytes)
	}

	if err := json.Unmarshal(resBytes, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", provider, err)
	}
	return nil
}

func newProviderError(provider string, status int, body []byte) *ProviderError {
	perr := &ProviderError{Provider: provider, StatusCode: status}

	// Most providers answer {"error": {"message": ...}} or {"error": "..."}.
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Valid(body) {
		perr.Body = json.RawMessage(body)
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			var flat string
			if json.Unmarshal(envelope.Error, &nested) == nil && nested.Message != "" {
				perr.Message = nested.Message
			} else if json.Unmarshal(envelope.Error, &flat) == nil {
				perr.Message = flat
			}
		}
	} else if len(body) > 0 {
		perr.Message = string(body)
	}
	return perr
}

func checkCount(provider string, want, got int) error {
	if want != got {
		return fmt.Errorf("%s returned %d embeddings for %d inputs", provider, got, want)
	}
	return nil
}
