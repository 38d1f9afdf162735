package http

import (
	"nutricoach/internal/settings"
)

type updateReq struct {
	Values map[string]string `json:"values" binding:"required"`
}

type validateReq struct {
	Target string `json:"-"`
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

func (r validateReq) toInput() settings.ValidateInput {
	return settings.ValidateInput{
		Target: r.Target,
		APIKey: r.APIKey,
		Model:  r.Model,
	}
}

type settingsResp struct {
	Values map[string]string `json:"values"`
}

func (h *handler) newSettingsResp(s settings.Settings) settingsResp {
	return settingsResp{Values: s.Masked()}
}

type validateResp struct {
	Valid bool `json:"valid"`
}
