package azure

import (
	"context"

	"nutricoach/pkg/openai"
)

// IAzure covers both Azure OpenAI surfaces.
type IAzure interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*openai.ChatResult, error)
	Responses(ctx context.Context, req ResponsesRequest) (*ResponsesResult, error)
}
