package azure

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"nutricoach/pkg/openai"
)

type Config struct {
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// ChatRequest targets a chat-completions deployment.
type ChatRequest struct {
	Endpoint   string
	Deployment string
	APIVersion string
	Messages   []openai.Message
	MaxTokens  int
}

// ResponsesRequest targets a full Responses API URL.
type ResponsesRequest struct {
	Endpoint   string
	APIVersion string
	Model      string
	Input      string
	MaxTokens  int
}

type responsesBody struct {
	Model           string `json:"model"`
	Input           string `json:"input"`
	MaxOutputTokens int    `json:"max_output_tokens,omitempty"`
}

// ResponsesResult is the normalized Responses API reply.
type ResponsesResult struct {
	Raw              []byte
	Text             string
	Status           string
	IncompleteReason string
}

// LengthLimited reports whether the model stopped on the output token cap.
func (r *ResponsesResult) LengthLimited() bool {
	return r.Status == StatusIncomplete && r.IncompleteReason == IncompleteMaxOutputToks
}

// parseResponses reads output[0].content, which is either a string or
// an array of content parts carrying text.
func parseResponses(raw []byte) *ResponsesResult {
	res := &ResponsesResult{Raw: raw}
	if !gjson.ValidBytes(raw) {
		return res
	}
	doc := gjson.ParseBytes(raw)
	res.Status = doc.Get("status").String()
	res.IncompleteReason = doc.Get("incomplete_details.reason").String()

	content := doc.Get("output.0.content")
	switch {
	case content.Type == gjson.String:
		res.Text = content.String()
	case content.IsArray():
		var parts []string
		content.ForEach(func(_, part gjson.Result) bool {
			if t := part.Get("text"); t.Exists() {
				parts = append(parts, t.String())
			}
			return true
		})
		res.Text = strings.Join(parts, "")
	}
	return res
}

// APIError is a non-2xx reply, with a hint for the most common misconfigurations.
type APIError struct {
	StatusCode int
	Body       string
	Hint       string
}

// Error renders status, body and hint as one JSON object so the whole
// diagnostic survives being shown as chat text.
func (e *APIError) Error() string {
	b, _ := json.Marshal(struct {
		Status int    `json:"status"`
		Body   string `json:"body"`
		Hint   string `json:"hint"`
	}{e.StatusCode, e.Body, e.Hint})
	return string(b)
}
