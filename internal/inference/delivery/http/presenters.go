package http

type generateReq struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type generateResp struct {
	Text string `json:"text"`
}
