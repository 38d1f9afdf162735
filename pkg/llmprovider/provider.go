package llmprovider

import "context"

// Provider issues one request to one backend and normalizes the reply.
type Provider interface {
	Send(ctx context.Context, req Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "usda")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized turn. User carries the profile and question,
// Query is the bare question for lookup-style backends.
type Request struct {
	System    string
	User      string
	Query     string
	MaxTokens int
}

// Response is the normalized reply. Truncated is true iff Text carries the marker.
type Response struct {
	Text         string
	Truncated    bool
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newResponse(p Provider, text string, usage *Usage) *Response {
	return &Response{
		Text:         text,
		Truncated:    HasMarker(text),
		ProviderName: p.Name(),
		ModelName:    p.Model(),
		Usage:        usage,
	}
}
