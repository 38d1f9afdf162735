package http

import (
	"nutricoach/internal/inference"
	"nutricoach/pkg/log"
)

type handler struct {
	l  log.Logger
	uc inference.UseCase
}

// New creates the inference proxy handler.
func New(l log.Logger, uc inference.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
