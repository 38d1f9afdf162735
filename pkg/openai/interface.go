package openai

import "context"

// IOpenAI is the chat-completions surface used by the provider adapter.
type IOpenAI interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (*ChatResult, error)
}
