package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"nutricoach/internal/conversation"
	"nutricoach/pkg/response"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Stream godoc
// @Summary     Conversation event stream
// @Description Upgrades to a WebSocket that receives {type, message} for every append or replace on this client's conversation.
// @Tags        Conversation
// @Success     101 "Switching Protocols"
// @Router      /api/v1/conversation/ws [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "ws upgrade: %v", err)
		return
	}

	sub := h.hub.Subscribe(clientID)
	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub.C(), done)
	sub.Close()
	conn.Close()
	<-done
}

// readPump discards client frames and closes done when the peer goes away.
func (h *handler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *handler) writePump(conn *websocket.Conn, events <-chan conversation.Event, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteJSON(newEventResp(ev)); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
