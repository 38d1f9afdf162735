package usecase

import (
	"context"
	"errors"
	"strings"

	"nutricoach/internal/model"
	"nutricoach/internal/profile"
	"nutricoach/internal/profile/repository"
)

func (uc *implUseCase) Get(ctx context.Context, clientID string) (model.UserProfile, error) {
	if clientID == "" {
		return model.UserProfile{}, profile.ErrMissingClientID
	}
	p, err := uc.repo.GetProfile(ctx, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.EmptyProfile(), nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.GetProfile: %v", LogPrefixGet, err)
		return model.UserProfile{}, err
	}
	return p.Normalize(), nil
}

func (uc *implUseCase) Put(ctx context.Context, clientID string, p model.UserProfile) (model.UserProfile, error) {
	return uc.mutate(ctx, clientID, func(model.UserProfile) model.UserProfile {
		return p.Normalize()
	})
}

func (uc *implUseCase) ToggleCondition(ctx context.Context, clientID, condition string) (model.UserProfile, error) {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return model.UserProfile{}, profile.ErrEmptyCondition
	}
	return uc.mutate(ctx, clientID, func(p model.UserProfile) model.UserProfile {
		return p.ToggleCondition(condition)
	})
}

func (uc *implUseCase) AddCustom(ctx context.Context, clientID, text string) (model.UserProfile, error) {
	return uc.mutate(ctx, clientID, func(p model.UserProfile) model.UserProfile {
		return p.AddCustom(text)
	})
}

func (uc *implUseCase) SetAllergies(ctx context.Context, clientID, raw string) (model.UserProfile, error) {
	return uc.mutate(ctx, clientID, func(p model.UserProfile) model.UserProfile {
		return p.WithAllergies(raw)
	})
}

func (uc *implUseCase) mutate(ctx context.Context, clientID string, fn func(model.UserProfile) model.UserProfile) (model.UserProfile, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.Get(ctx, clientID)
	if err != nil {
		return model.UserProfile{}, err
	}
	next := fn(current)
	if err := uc.repo.SaveProfile(ctx, clientID, next); err != nil {
		uc.l.Errorf(ctx, "%s: repo.SaveProfile: %v", LogPrefixMutate, err)
		return model.UserProfile{}, err
	}
	return next, nil
}
