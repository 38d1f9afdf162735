package huggingface

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Request struct {
	Model        string
	Inputs       string
	MaxNewTokens int
}

type body struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MaxNewTokens int `json:"max_new_tokens,omitempty"`
}

// Result carries the extracted text and the raw reply.
type Result struct {
	Text string
	Raw  []byte
}

// extractText tries, in order: [{generated_text}], {generated_text}, {text}.
// Anything else yields the raw body.
func extractText(raw []byte) string {
	if gjson.ValidBytes(raw) {
		doc := gjson.ParseBytes(raw)
		for _, path := range []string{"0.generated_text", "generated_text", "text"} {
			if v := doc.Get(path); v.Exists() && v.Type == gjson.String {
				return v.String()
			}
		}
	}
	return string(raw)
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Hugging Face API error %d: %s", e.StatusCode, e.Body)
}
