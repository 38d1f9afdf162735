package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DailyTip godoc
// @Summary     Daily nutrition tip
// @Description Picks one item of the food RSS feed per calendar day. Always 200; tip is null when the feed is unavailable.
// @Tags        Tip
// @Produce     json
// @Success     200 {object} dailyTipResp
// @Router      /daily-tip [GET]
func (h *handler) DailyTip(c *gin.Context) {
	var resp dailyTipResp
	if t, ok := h.uc.DailyTip(c.Request.Context()); ok {
		resp.Tip = &t
	}
	c.JSON(http.StatusOK, resp)
}
