package inference

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate runs the prompt on the server's inference model.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
