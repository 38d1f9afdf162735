package http

import (
	"github.com/gin-gonic/gin"

	"nutricoach/pkg/response"
)

// Ask godoc
// @Summary     Ask about a food
// @Description Appends the question and the classified answer. Provider failures come back as an "Error: ..." assistant message with status 200.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} messagesResp "Messages added by this turn"
// @Failure     400 {object} response.Resp "Empty prompt"
// @Failure     409 {object} response.Resp "Another turn is running"
// @Router      /api/v1/conversation/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	added, err := h.uc.Ask(ctx, clientID, req.Prompt)
	if err != nil {
		h.l.Warnf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newMessagesResp(added))
}

// Continue godoc
// @Summary     Continue a truncated answer
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} messagesResp "Messages added by this turn"
// @Failure     409 {object} response.Resp "Another turn is running"
// @Failure     422 {object} response.Resp "Last answer is not truncated"
// @Router      /api/v1/conversation/continue [POST]
func (h *handler) Continue(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	added, err := h.uc.Continue(ctx, clientID)
	if err != nil {
		h.l.Warnf(ctx, "uc.Continue: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newMessagesResp(added))
}

// SuggestRecipes godoc
// @Summary     Suggest recipes
// @Description Appends a recipe message filtered by allergies and ranked by the profile.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} messagesResp "Messages added by this turn"
// @Failure     409 {object} response.Resp "Another turn is running"
// @Router      /api/v1/conversation/recipes [POST]
func (h *handler) SuggestRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	added, err := h.uc.SuggestRecipes(ctx, clientID)
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestRecipes: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newMessagesResp(added))
}

// History godoc
// @Summary     Conversation history
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} messagesResp
// @Router      /api/v1/conversation [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	msgs, err := h.uc.History(ctx, clientID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newMessagesResp(msgs))
}

// Reset godoc
// @Summary     Clear the conversation
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "Another turn is running"
// @Router      /api/v1/conversation [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Reset(ctx, clientID); err != nil {
		h.l.Warnf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// Startup godoc
// @Summary     Welcome panel content
// @Description Daily tip (curated fallback) and quick topics when startup suggestions are enabled.
// @Tags        Conversation
// @Produce     json
// @Success     200 {object} startupResp
// @Router      /api/v1/conversation/startup [GET]
func (h *handler) Startup(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := h.clientID(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	s, err := h.uc.Startup(ctx, clientID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Startup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newStartupResp(s))
}
