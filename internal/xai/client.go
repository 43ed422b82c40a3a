package xai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/grok-mcp/pkg/log"
)

const requestTimeout = 30 * time.Second

// Client is the single point of outbound HTTP traffic to the xAI API.
// Safe for concurrent use; the model-listing cache is the only mutable
// state.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	models  *ttlSlot[*ModelsResponse]
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		models: newTTLSlot[*ModelsResponse](modelsTTL),
	}
}

// do issues one request and decodes a 2xx JSON body into out. Transport
// failures become *TransportError, non-2xx statuses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.FromCtx(ctx).Warn().Int("status", resp.StatusCode).Str("path", path).Msg("API request failed")
		return &APIError{StatusCode: resp.StatusCode, Message: upstreamMessage(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// upstreamMessage extracts the human-readable message from the provider
// error envelope, falling back to the raw body.
func upstreamMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
		var s string
		if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(body))
}

// ChatCompletion posts a chat completion request.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	log.FromCtx(ctx).Debug().Str("model", req.Model).Msg("chat completion request")

	var resp ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat/completions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateEmbeddings posts an embedding request.
func (c *Client) CreateEmbeddings(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	log.FromCtx(ctx).Debug().Str("model", req.Model).Msg("embedding request")

	var resp EmbeddingResponse
	if err := c.do(ctx, http.MethodPost, "/embeddings", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListModels fetches the model listing, serving from the 5-minute cache
// when the stored entry is still fresh. Concurrent callers on a cold
// cache may each hit the API; last write wins.
func (c *Client) ListModels(ctx context.Context) (*ModelsResponse, error) {
	if cached, ok := c.models.get(); ok {
		log.FromCtx(ctx).Debug().Msg("list models: cache hit")
		return cached, nil
	}

	log.FromCtx(ctx).Debug().Msg("list models: fetching from API")
	var resp ModelsResponse
	if err := c.do(ctx, http.MethodGet, "/models", nil, &resp); err != nil {
		return nil, err
	}
	c.models.put(&resp)
	return &resp, nil
}
