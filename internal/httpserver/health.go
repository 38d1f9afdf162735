package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutricoach/pkg/response"
)

const (
	HealthMessage = "NutriCoach API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "nutricoach"
)

func probeBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeBody("healthy"))
}

// readyCheck reports ready once the settings store answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warn(c.Request.Context(), "readiness probe failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
				Data:      probeBody("unavailable"),
			})
			return
		}
	}
	response.OK(c, probeBody("ready"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Description Check if the API process is alive. Never touches storage.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
