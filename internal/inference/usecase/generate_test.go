package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutricoach/internal/inference"
	"nutricoach/pkg/llmprovider"
	"nutricoach/pkg/log"
)

func TestGenerate(t *testing.T) {
	var got struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			MaxNewTokens int `json:"max_new_tokens"`
		} `json:"parameters"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/tiny" || r.Header.Get("Authorization") != "Bearer hf_srv" {
			http.Error(w, "bad route", http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`[{"generated_text":"Apples are healthy."}]`))
	}))
	defer srv.Close()

	factory := llmprovider.NewFactory(llmprovider.Options{HuggingFaceBaseURL: srv.URL})
	uc := New(log.NewNop(), factory, llmprovider.HuggingFaceConfig{APIKey: "hf_srv", Model: "tiny"})

	text, err := uc.Generate(context.Background(), " are apples healthy? ", 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Apples are healthy." {
		t.Errorf("text = %q", text)
	}
	if got.Parameters.MaxNewTokens != inference.DefaultMaxTokens {
		t.Errorf("max_new_tokens = %d", got.Parameters.MaxNewTokens)
	}
	if got.Inputs == "" {
		t.Error("inputs missing")
	}
}

func TestGenerate_Errors(t *testing.T) {
	factory := llmprovider.NewFactory(llmprovider.Options{})

	uc := New(log.NewNop(), factory, llmprovider.HuggingFaceConfig{APIKey: "k", Model: "m"})
	if _, err := uc.Generate(context.Background(), "  ", 10); !errors.Is(err, inference.ErrEmptyPrompt) {
		t.Errorf("empty prompt err = %v", err)
	}

	unconfigured := New(log.NewNop(), factory, llmprovider.HuggingFaceConfig{})
	if _, err := unconfigured.Generate(context.Background(), "hi", 10); !llmprovider.IsConfiguration(err) {
		t.Errorf("unconfigured err = %v", err)
	}
}
