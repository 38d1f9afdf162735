package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutricoach/pkg/llmprovider"
)

func newFactory(srv *httptest.Server) llmprovider.Factory {
	return llmprovider.NewFactory(llmprovider.Options{
		OpenAIBaseURL:      srv.URL + "/v1",
		HuggingFaceBaseURL: srv.URL,
		USDABaseURL:        srv.URL,
	})
}

func send(t *testing.T, f llmprovider.Factory, cfg llmprovider.Config, req llmprovider.Request) (*llmprovider.Response, error) {
	t.Helper()
	p, err := f.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p.Send(context.Background(), req)
}

func TestOpenAIAdapter(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"choices":[{"message":{"content":"Salmon is Beneficial."},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}}`))
	}))
	defer srv.Close()

	resp, err := send(t, newFactory(srv), llmprovider.OpenAIConfig{APIKey: "k", Model: "gpt-5-mini", MaxTokens: 300},
		llmprovider.Request{System: "sys", User: "Profile: {}\nQuestion: salmon"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.Text != "Salmon is Beneficial." || resp.Truncated {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 7 {
		t.Errorf("usage not mapped: %+v", resp.Usage)
	}
	msgs := body["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["content"] != "sys" {
		t.Errorf("unexpected messages %v", msgs)
	}
	if body["max_tokens"] != float64(300) || body["model"] != "gpt-5-mini" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestOpenAIAdapterTruncationAndRawFallback(t *testing.T) {
	tests := []struct {
		name          string
		reply         string
		wantTruncated bool
		wantText      string
	}{
		{
			name:          "empty content with length stop",
			reply:         `{"choices":[{"message":{"content":""},"finish_reason":"length"}]}`,
			wantTruncated: true,
			wantText:      llmprovider.Notice,
		},
		{
			name:     "empty content without length stop returns raw body",
			reply:    `{"choices":[{"message":{"content":""},"finish_reason":"stop"}]}`,
			wantText: `{"choices":[{"message":{"content":""},"finish_reason":"stop"}]}`,
		},
		{
			name:     "partial content with length stop keeps content",
			reply:    `{"choices":[{"message":{"content":"half"},"finish_reason":"length"}]}`,
			wantText: "half",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.reply))
			}))
			defer srv.Close()

			resp, err := send(t, newFactory(srv), llmprovider.OpenAIConfig{APIKey: "k", Model: "m"}, llmprovider.Request{User: "q"})
			if err != nil {
				t.Fatalf("Send: %v", err)
			}
			if resp.Text != tt.wantText || resp.Truncated != tt.wantTruncated {
				t.Errorf("got text=%q truncated=%v", resp.Text, resp.Truncated)
			}
		})
	}
}

func TestOpenAIAdapterQuota(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"insufficient_quota","message":"quota"}}`))
	}))
	defer srv.Close()

	_, err := send(t, newFactory(srv), llmprovider.OpenAIConfig{APIKey: "k", Model: "m"}, llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrInsufficientQuota) {
		t.Fatalf("expected quota error, got %v", err)
	}
	var pe *llmprovider.ProviderError
	if !errors.As(err, &pe) || pe.Kind != llmprovider.ErrKindRejection || pe.Status != http.StatusTooManyRequests {
		t.Errorf("unexpected provider error %+v", pe)
	}
	if !strings.Contains(pe.Body, "insufficient_quota") {
		t.Errorf("body not preserved: %q", pe.Body)
	}
}

func TestAzureChatAdapter(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(`{"choices":[{"message":{"content":""},"finish_reason":"length"}]}`))
	}))
	defer srv.Close()

	resp, err := send(t, newFactory(srv), llmprovider.AzureConfig{
		Endpoint:       srv.URL + "/openai/",
		APIKey:         "k",
		Deployment:     "gpt-x",
		ChatAPIVersion: "2023-10-01-preview",
	}, llmprovider.Request{User: "q"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if path != "/openai/deployments/gpt-x/chat/completions?api-version=2023-10-01-preview" {
		t.Errorf("unexpected path %s", path)
	}
	if !resp.Truncated || resp.ProviderName != "azure-chat" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAzureResponsesAdapter(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"status":"incomplete","incomplete_details":{"reason":"max_output_tokens"},"output":[{"content":[]}]}`))
	}))
	defer srv.Close()

	resp, err := send(t, newFactory(srv), llmprovider.AzureConfig{
		Endpoint:   srv.URL + "/openai/responses",
		APIKey:     "k",
		Deployment: "gpt-x",
		MaxTokens:  64,
	}, llmprovider.Request{System: "sys", User: "q"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if body["model"] != "gpt-x" || body["max_output_tokens"] != float64(64) || body["input"] != "sys\n\nq" {
		t.Errorf("unexpected body %v", body)
	}
	if !resp.Truncated {
		t.Errorf("incomplete reply must be flagged truncated: %+v", resp)
	}
}

func TestAzureResponsesAdapterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ResourceNotFound", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := send(t, newFactory(srv), llmprovider.AzureConfig{
		Endpoint: srv.URL + "/openai/responses", APIKey: "k", Deployment: "d",
	}, llmprovider.Request{})

	var pe *llmprovider.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Status != http.StatusNotFound || pe.Hint == "" || !strings.Contains(pe.Body, "ResourceNotFound") {
		t.Errorf("unexpected error %+v", pe)
	}
}

func TestAzureConfigValidation(t *testing.T) {
	f := llmprovider.NewFactory(llmprovider.Options{})
	tests := []struct {
		name string
		cfg  llmprovider.AzureConfig
		want string
	}{
		{"missing key", llmprovider.AzureConfig{Endpoint: "https://x"}, "Azure OpenAI endpoint or key not set. Please set them in Settings."},
		{"missing deployment", llmprovider.AzureConfig{Endpoint: "https://x", APIKey: "k"}, "Azure deployment not set. Please set it in Settings."},
		{"responses without model", llmprovider.AzureConfig{Endpoint: "https://x/openai/responses", APIKey: "k"}, "Azure deployment/model not set for the Responses API. Please set it in Settings."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Build(tt.cfg)
			if !llmprovider.IsConfiguration(err) || err.Error() != tt.want {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestHuggingFaceAdapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/org/m" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"generated_text":"Neutral overall."}`))
	}))
	defer srv.Close()

	resp, err := send(t, newFactory(srv), llmprovider.HuggingFaceConfig{APIKey: "k", Model: "org/m", MaxNewTokens: 10}, llmprovider.Request{User: "q"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.Text != "Neutral overall." {
		t.Errorf("got %q", resp.Text)
	}
}

func TestHuggingFaceAdapterFoldsSystemIntoInput(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`[{"generated_text":"ok"}]`))
	}))
	defer srv.Close()

	_, err := send(t, newFactory(srv), llmprovider.HuggingFaceConfig{APIKey: "k", Model: "org/m"},
		llmprovider.Request{System: "sys", User: "Profile: {}\nQuestion: oats", Query: "oats", MaxTokens: 40})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if body["inputs"] != "sys\n\nProfile: {}\nQuestion: oats" {
		t.Errorf("inputs = %q", body["inputs"])
	}
	params, _ := body["parameters"].(map[string]any)
	if params["max_new_tokens"] != float64(40) {
		t.Errorf("request tokens should apply without a configured cap: %v", params)
	}
}

func TestUSDAAdapter(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		query, _ = body["generalSearchInput"].(string)
		w.Write([]byte(`{"foods":[{"description":"Lentils","foodNutrients":[{"nutrientName":"Protein","value":9}]}]}`))
	}))
	defer srv.Close()

	resp, err := send(t, newFactory(srv), llmprovider.USDAConfig{APIKey: "k"},
		llmprovider.Request{User: "Profile: {}\nQuestion: lentils", Query: "lentils"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if query != "lentils" {
		t.Errorf("searched %q, want bare query", query)
	}
	if !strings.Contains(resp.Text, "Classification: BENEFICIAL") || resp.Truncated {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestDemoAdapter(t *testing.T) {
	resp, err := send(t, llmprovider.NewFactory(llmprovider.Options{}), llmprovider.DemoConfig{Text: "demo"}, llmprovider.Request{})
	if err != nil || resp.Text != "demo" {
		t.Errorf("got %+v, %v", resp, err)
	}
}
