package usecase

import (
	"nutricoach/internal/inference"
	"nutricoach/pkg/llmprovider"
	"nutricoach/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	factory llmprovider.Factory
	cfg     llmprovider.HuggingFaceConfig
}

// New creates the inference UseCase over the server-side proxy credentials.
func New(l log.Logger, factory llmprovider.Factory, cfg llmprovider.HuggingFaceConfig) inference.UseCase {
	return &implUseCase{l: l, factory: factory, cfg: cfg}
}
