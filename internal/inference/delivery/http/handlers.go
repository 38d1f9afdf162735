package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutricoach/internal/inference"
	pkgErrors "nutricoach/pkg/errors"
	"nutricoach/pkg/response"
)

// Generate godoc
// @Summary     Server inference proxy
// @Description Runs the prompt on the server's Hugging Face model. Generation failures are returned as text starting with "Error generating text:".
// @Tags        Inference
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt and token limit (default 150)"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inference [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "invalid request body: %v", err), nil)
		return
	}

	text, err := h.uc.Generate(ctx, req.Prompt, req.MaxTokens)
	if errors.Is(err, inference.ErrEmptyPrompt) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), nil)
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "uc.Generate: %v", err)
		text = inference.ErrorTextPrefix + err.Error()
	}
	response.OK(c, generateResp{Text: text})
}
