package usecase

import (
	"net/http"
	"time"

	"nutricoach/internal/recipe"
	"nutricoach/pkg/log"
)

type Config struct {
	SourceURL  string
	Count      int
	Timeout    time.Duration
	HTTPClient *http.Client
}

type implUseCase struct {
	l   log.Logger
	cfg Config
	hc  *http.Client
}

// New creates a recipe UseCase reading cfg.SourceURL.
func New(l log.Logger, cfg Config) recipe.UseCase {
	if cfg.SourceURL == "" {
		cfg.SourceURL = recipe.DefaultSourceURL
	}
	if cfg.Count <= 0 {
		cfg.Count = recipe.DefaultCount
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &implUseCase{l: l, cfg: cfg, hc: hc}
}
