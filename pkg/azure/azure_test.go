package azure

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutricoach/pkg/openai"
)

func TestChatURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "pasted openai suffix",
			endpoint: "https://foo.openai.azure.com/openai/",
			want:     "https://foo.openai.azure.com/openai/deployments/gpt-x/chat/completions?api-version=2024-01-01",
		},
		{
			name:     "bare origin",
			endpoint: "https://foo.openai.azure.com",
			want:     "https://foo.openai.azure.com/openai/deployments/gpt-x/chat/completions?api-version=2024-01-01",
		},
		{
			name:     "origin with trailing slash",
			endpoint: "https://foo.openai.azure.com/",
			want:     "https://foo.openai.azure.com/openai/deployments/gpt-x/chat/completions?api-version=2024-01-01",
		},
		{
			name:     "schemeless falls back to trimming",
			endpoint: "foo.openai.azure.com/openai/",
			want:     "foo.openai.azure.com/openai/deployments/gpt-x/chat/completions?api-version=2024-01-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChatURL(tt.endpoint, "gpt-x", "2024-01-01")
			if got != tt.want {
				t.Errorf("ChatURL() = %s, want %s", got, tt.want)
			}
			if strings.Contains(got, "/openai/openai/") {
				t.Errorf("double /openai segment in %s", got)
			}
		})
	}
}

func TestResponsesURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"https://x.azure.com/openai/responses", "https://x.azure.com/openai/responses?api-version=v1"},
		{"https://x.azure.com/openai/responses?foo=bar", "https://x.azure.com/openai/responses?foo=bar&api-version=v1"},
		{"https://x.azure.com/openai/responses?api-version=keep", "https://x.azure.com/openai/responses?api-version=keep"},
	}
	for _, tt := range tests {
		if got := ResponsesURL(tt.endpoint, "v1"); got != tt.want {
			t.Errorf("ResponsesURL(%s) = %s, want %s", tt.endpoint, got, tt.want)
		}
	}
}

func TestChatCompletionUsesCompletionTokens(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "k" {
			t.Errorf("missing api-key header")
		}
		if r.URL.Path != "/openai/deployments/dep/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "k"})
	res, err := c.ChatCompletion(context.Background(), ChatRequest{
		Endpoint:   srv.URL + "/openai",
		Deployment: "dep",
		APIVersion: "v",
		Messages:   []openai.Message{{Role: openai.RoleUser, Content: "hi"}},
		MaxTokens:  99,
	})
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if _, ok := body["max_tokens"]; ok {
		t.Error("max_tokens must not be sent to Azure")
	}
	if body["max_completion_tokens"] != float64(99) {
		t.Errorf("max_completion_tokens = %v", body["max_completion_tokens"])
	}
	if text, _ := res.Content(); text != "ok" {
		t.Errorf("content = %q", text)
	}
}

func TestChatCompletionErrorCarriesHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "DeploymentNotFound", http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "k"})
	_, err := c.ChatCompletion(context.Background(), ChatRequest{Endpoint: srv.URL, Deployment: "d"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Hint != HintChat {
		t.Errorf("unexpected error %+v", apiErr)
	}
	if !strings.Contains(err.Error(), `"status":404`) {
		t.Errorf("error text = %s", err.Error())
	}
}

func TestResponses(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantText   string
		wantLength bool
	}{
		{"string content", `{"output":[{"content":"Neutral."}]}`, "Neutral.", false},
		{"parts content", `{"output":[{"content":[{"type":"output_text","text":"Bene"},{"type":"output_text","text":"ficial"}]}]}`, "Beneficial", false},
		{"incomplete", `{"status":"incomplete","incomplete_details":{"reason":"max_output_tokens"},"output":[]}`, "", true},
		{"not json", `plain`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body responsesBody
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				json.Unmarshal(raw, &body)
				if r.URL.Query().Get("api-version") != "v2" {
					t.Errorf("api-version = %q", r.URL.Query().Get("api-version"))
				}
				w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			c, _ := New(Config{APIKey: "k"})
			res, err := c.Responses(context.Background(), ResponsesRequest{
				Endpoint:   srv.URL + "/openai/responses",
				APIVersion: "v2",
				Model:      "gpt-x",
				Input:      "salmon",
				MaxTokens:  10,
			})
			if err != nil {
				t.Fatalf("Responses: %v", err)
			}
			if body.Model != "gpt-x" || body.MaxOutputTokens != 10 {
				t.Errorf("unexpected body %+v", body)
			}
			if res.Text != tt.wantText || res.LengthLimited() != tt.wantLength {
				t.Errorf("got text=%q length=%v", res.Text, res.LengthLimited())
			}
			if string(res.Raw) != tt.reply {
				t.Errorf("raw not preserved")
			}
		})
	}
}

func TestIsResponsesEndpoint(t *testing.T) {
	if !IsResponsesEndpoint("https://x/openai/responses?api-version=1") {
		t.Error("expected responses endpoint")
	}
	if IsResponsesEndpoint("https://x.openai.azure.com") {
		t.Error("plain origin is not a responses endpoint")
	}
}
