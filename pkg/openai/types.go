package openai

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Config holds client settings. An empty BaseURL means DefaultBaseURL.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Message is a chat message. Azure chat deployments accept the same shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat-completions body. Exactly one of the token
// fields is normally set: OpenAI takes max_tokens, Azure deployments
// take max_completion_tokens.
type ChatRequest struct {
	Model               string    `json:"model,omitempty"`
	Messages            []Message `json:"messages"`
	MaxTokens           int       `json:"max_tokens,omitempty"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
}

// ChatResponse is the subset of the completion payload we read.
type ChatResponse struct {
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResult pairs the decoded response with the raw body. Raw is kept
// because callers fall back to it when no content can be extracted.
type ChatResult struct {
	Response ChatResponse
	Raw      []byte
	// Decoded is false when the body was not a JSON completion.
	Decoded bool
}

// Content returns the first choice's text and finish reason.
func (r *ChatResult) Content() (string, string) {
	if r == nil || len(r.Response.Choices) == 0 {
		return "", ""
	}
	c := r.Response.Choices[0]
	return c.Message.Content, c.FinishReason
}

// APIError is a non-2xx reply. Body is the verbatim response text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// Code returns error.code, or error.type when code is absent.
func (e *APIError) Code() string {
	if !gjson.Valid(e.Body) {
		return ""
	}
	res := gjson.GetMany(e.Body, "error.code", "error.type")
	if c := res[0].String(); c != "" {
		return c
	}
	return res[1].String()
}

// IsInsufficientQuota reports whether the rejection is a quota exhaustion.
func (e *APIError) IsInsufficientQuota() bool {
	return e.Code() == CodeInsufficientQuota
}
