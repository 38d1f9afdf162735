package usecase

import (
	"sync"

	"nutricoach/internal/profile"
	"nutricoach/internal/profile/repository"
	"nutricoach/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// mu serializes read-modify-write mutations.
	mu sync.Mutex
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, l log.Logger) profile.UseCase {
	return &implUseCase{repo: repo, l: l}
}
