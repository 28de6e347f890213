package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reviewlab/reviewgraph/internal/util"
)

// Client calls a remote tagging service over HTTP. The service exposes
// POST {base}/tag taking {"text": ...} and returning
// {"tokens": [{"token": ..., "pos": ...}, ...]}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

// NewClientParams defines the configuration for creating a Client.
type NewClientParams struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// NewClient creates a tagging service client.
func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{
		baseURL:    params.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
	}
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Tokens []TaggedToken `json:"tokens"`
}

// Tag sends the text to the tagging service and returns the tagged tokens.
// Transient failures are retried up to the configured limit.
func (c *Client) Tag(ctx context.Context, text string) ([]TaggedToken, error) {
	return util.RetryWithContext(ctx, c.maxRetries, func(ctx context.Context) ([]TaggedToken, error) {
		return c.tagOnce(ctx, text)
	})
}

func (c *Client) tagOnce(ctx context.Context, text string) ([]TaggedToken, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tag", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("tagging service returned %d: %s", res.StatusCode, string(msg))
	}

	var parsed tagResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode tagging response: %w", err)
	}
	return parsed.Tokens, nil
}
