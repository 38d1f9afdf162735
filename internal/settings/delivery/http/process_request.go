package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"nutricoach/internal/middleware"
	"nutricoach/internal/settings"
	pkgErrors "nutricoach/pkg/errors"
)

func (h *handler) clientID(c *gin.Context) (string, error) {
	id := middleware.GetClientID(c)
	if id == "" {
		return "", settings.ErrMissingClientID
	}
	return id, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
	}
	return req, nil
}

// processValidateReq reads the target from the path. The body is optional.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, error) {
	var req validateReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, pkgErrors.NewHTTPErrorf(400, "invalid request body: %v", err)
		}
	}
	req.Target = c.Param("target")
	return req, nil
}
