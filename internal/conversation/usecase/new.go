package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nutricoach/internal/conversation"
	"nutricoach/internal/profile"
	"nutricoach/internal/recipe"
	"nutricoach/internal/settings"
	"nutricoach/internal/tip"
	"nutricoach/pkg/llmprovider"
	"nutricoach/pkg/log"
)

// Sender routes one request through the selected provider.
type Sender interface {
	Send(ctx context.Context, sel llmprovider.Selection, req llmprovider.Request) (*llmprovider.Response, error)
}

// Deps are the collaborators of the conversation use case.
type Deps struct {
	Store    *conversation.Store
	Sender   Sender
	Settings settings.UseCase
	Profile  profile.UseCase
	Tips     tip.UseCase
	Recipes  recipe.UseCase
}

type implUseCase struct {
	l        log.Logger
	store    *conversation.Store
	sender   Sender
	settings settings.UseCase
	profile  profile.UseCase
	tips     tip.UseCase
	recipes  recipe.UseCase

	now   func() time.Time
	newID func() string
}

// New creates the conversation UseCase.
func New(l log.Logger, d Deps) conversation.UseCase {
	return &implUseCase{
		l:        l,
		store:    d.Store,
		sender:   d.Sender,
		settings: d.Settings,
		profile:  d.Profile,
		tips:     d.Tips,
		recipes:  d.Recipes,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
