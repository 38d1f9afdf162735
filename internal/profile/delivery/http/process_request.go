package http

import (
	"github.com/gin-gonic/gin"

	"nutricoach/internal/middleware"
	"nutricoach/internal/profile"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) clientID(c *gin.Context) (string, error) {
	id := middleware.GetClientID(c)
	if id == "" {
		return "", profile.ErrMissingClientID
	}
	return id, nil
}

// bind decodes the JSON body into req.
func bind[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
	}
	return req, nil
}
