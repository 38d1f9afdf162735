package http

import (
	"nutricoach/internal/model"
)

type putReq struct {
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
	Custom     []string `json:"custom"`
}

func (r putReq) toProfile() model.UserProfile {
	return model.UserProfile{
		Conditions: r.Conditions,
		Allergies:  r.Allergies,
		Custom:     r.Custom,
	}
}

type toggleReq struct {
	Condition string `json:"condition" binding:"required"`
}

type customReq struct {
	Text string `json:"text"`
}

type allergiesReq struct {
	Raw string `json:"raw"`
}

type profileResp struct {
	Conditions       []string `json:"conditions"`
	Allergies        []string `json:"allergies"`
	Custom           []string `json:"custom"`
	CommonConditions []string `json:"common_conditions"`
}

func (h *handler) newProfileResp(p model.UserProfile) profileResp {
	p = p.Normalize()
	return profileResp{
		Conditions:       p.Conditions,
		Allergies:        p.Allergies,
		Custom:           p.Custom,
		CommonConditions: model.CommonConditions,
	}
}
