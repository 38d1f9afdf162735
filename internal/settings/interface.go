package settings

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, clientID string) (Settings, error)
	Update(ctx context.Context, clientID string, values map[string]string) (Settings, error)
	// Select builds the provider selection from the client's settings.
	Select(ctx context.Context, clientID string) (Snapshot, error)
	Validate(ctx context.Context, clientID string, input ValidateInput) (bool, error)
	SetDefaults(defaults map[string]string)
}
