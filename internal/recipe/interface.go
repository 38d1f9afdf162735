package recipe

import (
	"context"

	"nutricoach/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggest returns recipe links for p. It never fails: when the source
	// is unreachable the curated list is returned.
	Suggest(ctx context.Context, p model.UserProfile) []model.Recipe
}
