package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps POST "" under rg to the proxy.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Generate)
}
