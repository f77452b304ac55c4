package pinterest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.pinterest.com/v5"
	// MaxPageSize is the largest page_size the pins endpoint accepts.
	MaxPageSize = 100
)

// UpstreamError is a non-2xx answer from Pinterest. Details holds the decoded
// response body so it can be relayed to the caller as-is.
type UpstreamError struct {
	StatusCode int
	Details    interface{}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pinterest: status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListBoards returns one page of the authorized user's boards.
func (c *Client) ListBoards(ctx context.Context, accessToken string, pageSize int, bookmark string) (*BoardPage, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(pageSize))
	if bookmark != "" {
		q.Set("bookmark", bookmark)
	}

	var page BoardPage
	if err := c.get(ctx, accessToken, "/boards", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListBoardPins returns one page of pins of a board.
func (c *Client) ListBoardPins(ctx context.Context, accessToken, boardId string, pageSize int, bookmark string) (*PinPage, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(pageSize))
	if bookmark != "" {
		q.Set("bookmark", bookmark)
	}

	var page PinPage
	path := "/boards/" + url.PathEscape(boardId) + "/pins"
	if err := c.get(ctx, accessToken, path, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, accessToken, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinterest request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read pinterest response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var details interface{}
		if json.Unmarshal(body, &details) != nil {
			details = string(body)
		}
		return &UpstreamError{StatusCode: resp.StatusCode, Details: details}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode pinterest response: %w", err)
	}
	return nil
}
