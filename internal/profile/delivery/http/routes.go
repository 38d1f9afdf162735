package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the profile endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Get)
	rg.PUT("", h.Put)
	rg.POST("/conditions/toggle", h.ToggleCondition)
	rg.POST("/custom", h.AddCustom)
	rg.PUT("/allergies", h.SetAllergies)
}
