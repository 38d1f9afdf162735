package http

import (
	"github.com/gin-gonic/gin"

	"nutricoach/pkg/response"
)

// Get godoc
// @Summary     Get settings
// @Description Returns the client's settings overlaid on the server defaults. Secrets are masked to their last 4 characters.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	s, err := h.uc.Get(ctx, clientID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// Update godoc
// @Summary     Update settings
// @Description Writes the given keys only. Unknown keys are rejected. Blank or masked secrets leave the stored secret untouched.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Settings to write"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Update(ctx, clientID, req.Values)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// Validate godoc
// @Summary     Validate a provider credential
// @Description Sends a minimal probe request to USDA or Hugging Face with the stored key, or the key in the body.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       target path string      true  "usda or hf"
// @Param       body   body validateReq false "Override credentials"
// @Success     200 {object} validateResp
// @Failure     404 {object} response.Resp "Unknown target"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings/validate/{target} [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	valid, err := h.uc.Validate(ctx, clientID, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, validateResp{Valid: valid})
}
