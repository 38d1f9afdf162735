package http

import (
	"github.com/gin-gonic/gin"

	"nutricoach/internal/conversation"
	"nutricoach/internal/middleware"
	"nutricoach/internal/model"
	"nutricoach/pkg/llmprovider"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) clientID(c *gin.Context) (string, error) {
	id := middleware.GetClientID(c)
	if id == "" {
		return "", conversation.ErrMissingClientID
	}
	return id, nil
}

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
	}
	return req, nil
}

func isTruncated(m model.Message) bool {
	return m.Origin == model.OriginAssistant && !m.Pending && llmprovider.HasMarker(m.Text)
}
