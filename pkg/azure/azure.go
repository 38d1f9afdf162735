package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"nutricoach/pkg/openai"
)

// Client implements IAzure. Endpoints are passed per call because they
// live in per-client settings.
type Client struct {
	apiKey string
	client *http.Client
}

// New creates a new Azure OpenAI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{apiKey: cfg.APIKey, client: hc}, nil
}

// ChatCompletion posts to a deployment's chat-completions route.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*openai.ChatResult, error) {
	if req.APIVersion == "" {
		req.APIVersion = DefaultChatAPIVersion
	}
	body, err := json.Marshal(openai.ChatRequest{
		Messages:            req.Messages,
		MaxCompletionTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ChatURL(req.Endpoint, req.Deployment, req.APIVersion), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	res, err := openai.Do(c.client, httpReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &APIError{StatusCode: apiErr.StatusCode, Body: apiErr.Body, Hint: HintChat}
		}
		return nil, err
	}
	return res, nil
}

// Responses posts to a Responses API endpoint.
func (c *Client) Responses(ctx context.Context, req ResponsesRequest) (*ResponsesResult, error) {
	if req.APIVersion == "" {
		req.APIVersion = DefaultResponsesAPIVersion
	}
	body, err := json.Marshal(responsesBody{
		Model:           req.Model,
		Input:           req.Input,
		MaxOutputTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ResponsesURL(req.Endpoint, req.APIVersion), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw), Hint: HintResponses}
	}
	return parseResponses(raw), nil
}
