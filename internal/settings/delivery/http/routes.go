package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the settings endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Get)
	rg.PUT("", h.Update)
	rg.POST("/validate/:target", h.Validate)
}
