package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"nutricoach/pkg/azure"
	"nutricoach/pkg/huggingface"
	"nutricoach/pkg/openai"
	"nutricoach/pkg/usda"
)

const defaultSystem = "You are a nutrition assistant."

// OpenAIAdapter adapts pkg/openai to the Provider interface.
type OpenAIAdapter struct {
	client openai.IOpenAI
	cfg    OpenAIConfig
}

func NewOpenAIAdapter(client openai.IOpenAI, cfg OpenAIConfig) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, cfg: cfg}
}

func (a *OpenAIAdapter) Send(ctx context.Context, req Request) (*Response, error) {
	res, err := a.client.CreateChatCompletion(ctx, openai.ChatRequest{
		Model:     a.cfg.Model,
		Messages:  chatMessages(req),
		MaxTokens: pickTokens(a.cfg.MaxTokens, req.MaxTokens),
	})
	if err != nil {
		return nil, openAIError(a.Name(), err)
	}
	return newResponse(a, chatText(res), chatUsage(res)), nil
}

func (a *OpenAIAdapter) Name() string  { return string(KindOpenAI) }
func (a *OpenAIAdapter) Model() string { return a.cfg.Model }

// AzureChatAdapter targets a chat-completions deployment.
type AzureChatAdapter struct {
	client azure.IAzure
	cfg    AzureConfig
}

func NewAzureChatAdapter(client azure.IAzure, cfg AzureConfig) *AzureChatAdapter {
	return &AzureChatAdapter{client: client, cfg: cfg}
}

func (a *AzureChatAdapter) Send(ctx context.Context, req Request) (*Response, error) {
	res, err := a.client.ChatCompletion(ctx, azure.ChatRequest{
		Endpoint:   a.cfg.Endpoint,
		Deployment: a.cfg.Deployment,
		APIVersion: a.cfg.ChatAPIVersion,
		Messages:   chatMessages(req),
		MaxTokens:  pickTokens(a.cfg.MaxTokens, req.MaxTokens),
	})
	if err != nil {
		return nil, azureError(a.Name(), err)
	}
	return newResponse(a, chatText(res), chatUsage(res)), nil
}

func (a *AzureChatAdapter) Name() string  { return "azure-chat" }
func (a *AzureChatAdapter) Model() string { return a.cfg.Deployment }

// AzureResponsesAdapter targets a full Responses API URL.
type AzureResponsesAdapter struct {
	client azure.IAzure
	cfg    AzureConfig
}

func NewAzureResponsesAdapter(client azure.IAzure, cfg AzureConfig) *AzureResponsesAdapter {
	return &AzureResponsesAdapter{client: client, cfg: cfg}
}

func (a *AzureResponsesAdapter) Send(ctx context.Context, req Request) (*Response, error) {
	res, err := a.client.Responses(ctx, azure.ResponsesRequest{
		Endpoint:   a.cfg.Endpoint,
		APIVersion: a.cfg.ResponsesAPIVersion,
		Model:      a.cfg.Deployment,
		Input:      singleInput(req),
		MaxTokens:  pickTokens(a.cfg.MaxTokens, req.MaxTokens),
	})
	if err != nil {
		return nil, azureError(a.Name(), err)
	}

	text := withNotice(res.Text, res.LengthLimited())
	if text == "" {
		text = string(res.Raw)
	}
	return newResponse(a, text, nil), nil
}

func (a *AzureResponsesAdapter) Name() string  { return "azure-responses" }
func (a *AzureResponsesAdapter) Model() string { return a.cfg.Deployment }

// HuggingFaceAdapter adapts pkg/huggingface. Truncation is never reported.
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
	cfg    HuggingFaceConfig
}

func NewHuggingFaceAdapter(client huggingface.IHuggingFace, cfg HuggingFaceConfig) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client, cfg: cfg}
}

func (a *HuggingFaceAdapter) Send(ctx context.Context, req Request) (*Response, error) {
	res, err := a.client.Generate(ctx, huggingface.Request{
		Model:        a.cfg.Model,
		Inputs:       singleInput(req),
		MaxNewTokens: pickTokens(a.cfg.MaxNewTokens, req.MaxTokens),
	})
	if err != nil {
		var apiErr *huggingface.APIError
		if errors.As(err, &apiErr) {
			return nil, rejection(a.Name(), apiErr.StatusCode, apiErr.Body, "", err)
		}
		return nil, transport(a.Name(), err)
	}
	return newResponse(a, res.Text, nil), nil
}

func (a *HuggingFaceAdapter) Name() string  { return string(KindHuggingFace) }
func (a *HuggingFaceAdapter) Model() string { return a.cfg.Model }

// USDAAdapter answers from the nutrient database instead of a model.
type USDAAdapter struct {
	client usda.IUSDA
}

func NewUSDAAdapter(client usda.IUSDA) *USDAAdapter {
	return &USDAAdapter{client: client}
}

func (a *USDAAdapter) Send(ctx context.Context, req Request) (*Response, error) {
	query := req.Query
	if query == "" {
		query = req.User
	}
	text, err := usda.Lookup(ctx, a.client, query)
	if err != nil {
		var apiErr *usda.APIError
		if errors.As(err, &apiErr) {
			return nil, rejection(a.Name(), apiErr.StatusCode, apiErr.Body, "", err)
		}
		return nil, transport(a.Name(), err)
	}
	// Lookup output is never length-limited.
	return &Response{Text: text, ProviderName: a.Name(), ModelName: a.Model()}, nil
}

func (a *USDAAdapter) Name() string  { return string(KindUSDA) }
func (a *USDAAdapter) Model() string { return "fdc-search" }

// DemoAdapter returns fixed text.
type DemoAdapter struct {
	cfg DemoConfig
}

func NewDemoAdapter(cfg DemoConfig) *DemoAdapter {
	return &DemoAdapter{cfg: cfg}
}

func (a *DemoAdapter) Send(_ context.Context, _ Request) (*Response, error) {
	return &Response{Text: a.cfg.Text, ProviderName: a.Name(), ModelName: a.Model()}, nil
}

func (a *DemoAdapter) Name() string  { return string(KindDemo) }
func (a *DemoAdapter) Model() string { return "static" }

// Conversion helpers

func chatMessages(req Request) []openai.Message {
	system := req.System
	if system == "" {
		system = defaultSystem
	}
	return []openai.Message{
		{Role: openai.RoleSystem, Content: system},
		{Role: openai.RoleUser, Content: req.User},
	}
}

// singleInput folds the system preamble into one prompt for single-input APIs.
func singleInput(req Request) string {
	if req.System == "" {
		return req.User
	}
	return req.System + "\n\n" + req.User
}

// chatText applies the notice rule, then falls back to the raw body when
// nothing could be extracted.
func chatText(res *openai.ChatResult) string {
	content, finish := res.Content()
	text := withNotice(content, finish == openai.FinishReasonLength)
	if text == "" {
		return string(res.Raw)
	}
	return text
}

func chatUsage(res *openai.ChatResult) *Usage {
	if !res.Decoded {
		return nil
	}
	u := res.Response.Usage
	return &Usage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}

// pickTokens prefers the cap configured on the provider; the request value
// only fills in when none is set.
func pickTokens(configured, requested int) int {
	if configured > 0 {
		return configured
	}
	return requested
}

func openAIError(name string, err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return transport(name, err)
	}
	if apiErr.IsInsufficientQuota() {
		return rejection(name, apiErr.StatusCode, apiErr.Body, "", fmt.Errorf("%w: %w", ErrInsufficientQuota, err))
	}
	return rejection(name, apiErr.StatusCode, apiErr.Body, "", err)
}

func azureError(name string, err error) error {
	var apiErr *azure.APIError
	if errors.As(err, &apiErr) {
		return rejection(name, apiErr.StatusCode, apiErr.Body, apiErr.Hint, err)
	}
	return transport(name, err)
}

func rejection(name string, status int, body, hint string, err error) error {
	return &ProviderError{Provider: name, Kind: ErrKindRejection, Status: status, Body: body, Hint: hint, Err: err}
}

func transport(name string, err error) error {
	return &ProviderError{Provider: name, Kind: ErrKindTransport, Err: err}
}
