package http

import (
	"nutricoach/internal/profile"
	"nutricoach/pkg/log"
)

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates the profile HTTP handler.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
