package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts GET /daily-tip on r.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.GET("/daily-tip", h.DailyTip)
}
