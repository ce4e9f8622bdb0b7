// Package embed provides an OpenAI-compatible embeddings client used for
// semantic recipe scoring. The retriever treats any error here as "backend
// unavailable" and falls back to keyword scoring.
package embed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.Embedder = (*Client)(nil)

// ── Wire types ───────────────────────────────────────────────────

// payload is the request body sent to the embeddings endpoint.
type payload struct {
	Input []string `json:"input"`
	Model string   `json:"model,omitempty"`
}

// apiResponse is the top-level response envelope.
type apiResponse struct {
	Data []embeddingItem `json:"data"`
}

type embeddingItem struct {
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel overrides the default embedding model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithRetries sets how often a failed request is retried.
func WithRetries(n int) ClientOption {
	return func(c *Client) { c.http.SetRetryCount(n) }
}

// Client talks to an OpenAI-compatible /v1/embeddings endpoint.
type Client struct {
	http  *resty.Client
	model string
	log   *logger.Logger
}

// NewClient creates an embeddings client.
//   - baseURL: scheme and host, e.g. "https://api.openai.com"
//   - apiKey:  bearer token; empty for unauthenticated local backends
func NewClient(baseURL, apiKey string, log *logger.Logger, opts ...ClientOption) *Client {
	httpc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		httpc.SetAuthToken(apiKey)
	}

	c := &Client{
		http:  httpc,
		model: "text-embedding-3-small",
		log:   log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Embed returns one embedding vector per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var (
		result apiResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload{Input: texts, Model: c.model}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v1/embeddings")
	if err != nil {
		return nil, fmt.Errorf("embed: request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return nil, fmt.Errorf("embed: API %s: %s", resp.Status(), apiErr.Error.Message)
		}
		return nil, fmt.Errorf("embed: API %s", resp.Status())
	}
	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("embed: got %d vectors for %d inputs", len(result.Data), len(texts))
	}

	// Vectors are keyed by the response index field, not slice position.
	vectors := make([][]float64, len(texts))
	for _, item := range result.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("embed: vector index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}

	c.log.Debug("embed: %d texts -> %d-dim vectors", len(texts), dim(vectors))
	return vectors, nil
}

func dim(vectors [][]float64) int {
	if len(vectors) == 0 {
		return 0
	}
	return len(vectors[0])
}
