package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the conversation endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.History)
	rg.DELETE("", h.Reset)
	rg.POST("/ask", h.Ask)
	rg.POST("/continue", h.Continue)
	rg.POST("/recipes", h.SuggestRecipes)
	rg.GET("/startup", h.Startup)
	rg.GET("/ws", h.Stream)
}
