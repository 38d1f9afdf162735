package http

import (
	"nutricoach/internal/tip"
	"nutricoach/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tip.UseCase
}

// New creates the daily-tip HTTP handler.
func New(l log.Logger, uc tip.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
