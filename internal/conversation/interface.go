package conversation

import (
	"context"

	"nutricoach/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask runs one question turn and returns the messages it added.
	Ask(ctx context.Context, clientID, prompt string) ([]model.Message, error)
	// Continue extends a truncated trailing assistant message.
	Continue(ctx context.Context, clientID string) ([]model.Message, error)
	SuggestRecipes(ctx context.Context, clientID string) ([]model.Message, error)
	History(ctx context.Context, clientID string) ([]model.Message, error)
	Reset(ctx context.Context, clientID string) error
	Startup(ctx context.Context, clientID string) (Startup, error)
}

// Publisher receives every change made to a client's conversation.
type Publisher interface {
	Publish(clientID string, ev Event)
}
