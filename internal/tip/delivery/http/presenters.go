package http

// dailyTipResp is sent bare, without the response envelope. Tip is null
// when no tip is available.
type dailyTipResp struct {
	Tip *string `json:"tip"`
}
