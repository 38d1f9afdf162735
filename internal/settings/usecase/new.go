package usecase

import (
	"maps"
	"sync"

	"nutricoach/internal/settings"
	"nutricoach/internal/settings/repository"
	"nutricoach/pkg/log"
)

// implUseCase is the private implementation of settings.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	server settings.ServerOptions
	probe  Prober

	mu       sync.RWMutex
	defaults map[string]string
}

// New creates a new settings UseCase implementation.
func New(repo repository.Repository, l log.Logger, defaults map[string]string, server settings.ServerOptions, probe Prober) settings.UseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		server:   server,
		probe:    probe,
		defaults: maps.Clone(defaults),
	}
}

// SetDefaults swaps the defaults, e.g. after a config reload.
func (uc *implUseCase) SetDefaults(defaults map[string]string) {
	uc.mu.Lock()
	uc.defaults = maps.Clone(defaults)
	uc.mu.Unlock()
}

func (uc *implUseCase) currentDefaults() map[string]string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.defaults
}
