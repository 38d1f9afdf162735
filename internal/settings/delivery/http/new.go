package http

import (
	"nutricoach/internal/settings"
	"nutricoach/pkg/log"
)

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates the settings HTTP handler.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
