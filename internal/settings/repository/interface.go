package repository

import "context"

// Repository stores per-client setting values.
type Repository interface {
	// ListSettings returns every stored key for the client. Unknown clients yield an empty map.
	ListSettings(ctx context.Context, clientID string) (map[string]string, error)
	// UpsertSettings writes the given keys and leaves all others untouched.
	UpsertSettings(ctx context.Context, clientID string, values map[string]string) error
}
