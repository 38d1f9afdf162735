package http

import (
	"github.com/gorilla/websocket"

	"nutricoach/internal/conversation"
	"nutricoach/internal/conversation/stream"
	"nutricoach/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       conversation.UseCase
	hub      *stream.Hub
	upgrader websocket.Upgrader
}

// New creates the conversation HTTP and WebSocket handler.
func New(l log.Logger, uc conversation.UseCase, hub *stream.Hub) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}
