package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"nutricoach/internal/model"
	"nutricoach/pkg/response"
)

// Get godoc
// @Summary     Get health profile
// @Description Returns the client's health profile. A client without one gets the empty profile.
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) Get(c *gin.Context) {
	h.respond(c, "uc.Get", func(ctx context.Context, clientID string) (model.UserProfile, error) {
		return h.uc.Get(ctx, clientID)
	})
}

// Put godoc
// @Summary     Replace health profile
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body putReq true "Whole profile"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [PUT]
func (h *handler) Put(c *gin.Context) {
	req, err := bind[putReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.respond(c, "uc.Put", func(ctx context.Context, clientID string) (model.UserProfile, error) {
		return h.uc.Put(ctx, clientID, req.toProfile())
	})
}

// ToggleCondition godoc
// @Summary     Toggle a condition
// @Description Adds the condition when absent, removes it when present.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body toggleReq true "Condition"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile/conditions/toggle [POST]
func (h *handler) ToggleCondition(c *gin.Context) {
	req, err := bind[toggleReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.respond(c, "uc.ToggleCondition", func(ctx context.Context, clientID string) (model.UserProfile, error) {
		return h.uc.ToggleCondition(ctx, clientID, req.Condition)
	})
}

// AddCustom godoc
// @Summary     Add a custom health issue
// @Description Appends trimmed free text. Blank text leaves the profile unchanged.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body customReq true "Issue text"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile/custom [POST]
func (h *handler) AddCustom(c *gin.Context) {
	req, err := bind[customReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.respond(c, "uc.AddCustom", func(ctx context.Context, clientID string) (model.UserProfile, error) {
		return h.uc.AddCustom(ctx, clientID, req.Text)
	})
}

// SetAllergies godoc
// @Summary     Set allergies
// @Description Replaces allergies from a comma-separated string.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body allergiesReq true "Comma-separated allergies"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/profile/allergies [PUT]
func (h *handler) SetAllergies(c *gin.Context) {
	req, err := bind[allergiesReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.respond(c, "uc.SetAllergies", func(ctx context.Context, clientID string) (model.UserProfile, error) {
		return h.uc.SetAllergies(ctx, clientID, req.Raw)
	})
}

func (h *handler) respond(c *gin.Context, op string, fn func(ctx context.Context, clientID string) (model.UserProfile, error)) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	p, err := fn(ctx, clientID)
	if err != nil {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProfileResp(p))
}
