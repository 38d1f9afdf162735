package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutricoach/internal/tip"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "Verdict:", "Avoid"}, "avoid"},
		{[]string{"classify", "Oats are good for your heart."}, "beneficial"},
		{[]string{"classify", "Great source of fiber."}, "none"},
	}
	for _, tt := range tests {
		got, err := execute(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if strings.TrimSpace(got) != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestAskDemo(t *testing.T) {
	got, err := execute(t, "ask", "--provider", "demo", "--demo-text", "Salmon is beneficial.", "salmon?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(got, "Salmon is beneficial.") || !strings.Contains(got, "Classification: beneficial (demo)") {
		t.Fatalf("output = %q", got)
	}
}

func TestAskOpenAI(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Salmon is recommended twice a week."},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	got, err := execute(t, "ask", "--provider", "openai", "--api-key", "sk-test", "--base-url", srv.URL,
		"--condition", "hypertension", "is", "salmon", "ok?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("auth = %q", auth)
	}
	if !strings.Contains(got, "Classification: beneficial (openai)") {
		t.Fatalf("output = %q", got)
	}
}

func TestAskErrors(t *testing.T) {
	if _, err := execute(t, "ask", "--provider", "gemini", "x"); err == nil {
		t.Error("unknown provider: want error")
	}
	if _, err := execute(t, "ask", "--provider", "openai", "x"); err == nil {
		t.Error("missing key: want configuration error")
	}
	if _, err := execute(t, "ask"); err == nil {
		t.Error("no question: want args error")
	}
}

func TestAskOptionsAzureDeploymentFallback(t *testing.T) {
	o := &askOptions{provider: "azure", model: "gpt-5-mini", endpoint: "https://x.openai.azure.com"}
	cfg, err := o.config()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Kind(); got != "azure" {
		t.Fatalf("kind = %q", got)
	}
}

func TestTipCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Food</title>
<item><title>Eat more beans</title><description>Cheap protein.</description></item>
</channel></rss>`))
	}))
	defer srv.Close()

	got, err := execute(t, "tip", "--rss-url", srv.URL)
	if err != nil {
		t.Fatalf("tip: %v", err)
	}
	if strings.TrimSpace(got) != "Eat more beans" {
		t.Fatalf("output = %q", got)
	}
}

func TestTipCmdFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got, err := execute(t, "tip", "--rss-url", url, "--timeout", "2s")
	if err != nil {
		t.Fatalf("tip: %v", err)
	}
	if strings.TrimSpace(got) != tip.CuratedFor(time.Now()) {
		t.Fatalf("output = %q", got)
	}

	if _, err := execute(t, "tip", "--rss-url", url, "--timeout", "2s", "--curated=false"); err == nil {
		t.Fatal("want error without curated fallback")
	}
}

func TestAssessCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdc/v1/foods/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"foods":[{"description":"Cola","foodNutrients":[{"nutrientName":"Sugars","unitName":"G","value":26}]}]}`))
	}))
	defer srv.Close()

	got, err := execute(t, "assess", "--usda-key", "k", "--base-url", srv.URL, "cola")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if !strings.Contains(got, "Classification: AVOID") {
		t.Fatalf("output = %q", got)
	}
}

func TestAssessRequiresKey(t *testing.T) {
	t.Setenv("USDA_API_KEY", "")
	if _, err := execute(t, "assess", "apple"); err == nil {
		t.Fatal("want missing key error")
	}
}
