package profile

import (
	"context"

	"nutricoach/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the stored profile, or the empty profile when none exists.
	Get(ctx context.Context, clientID string) (model.UserProfile, error)
	Put(ctx context.Context, clientID string, p model.UserProfile) (model.UserProfile, error)
	ToggleCondition(ctx context.Context, clientID, condition string) (model.UserProfile, error)
	AddCustom(ctx context.Context, clientID, text string) (model.UserProfile, error)
	SetAllergies(ctx context.Context, clientID, raw string) (model.UserProfile, error)
}
