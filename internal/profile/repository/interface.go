package repository

import (
	"context"

	"nutricoach/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetProfile returns ErrNotFound when the client has no stored profile.
	GetProfile(ctx context.Context, clientID string) (model.UserProfile, error)
	SaveProfile(ctx context.Context, clientID string, p model.UserProfile) error
}
