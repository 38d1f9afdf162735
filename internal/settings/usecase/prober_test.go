package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutricoach/pkg/llmprovider"
)

func TestHTTPProber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdc/v1/foods/search":
			if r.URL.Query().Get("api_key") != "good" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Write([]byte(`{"foods":[]}`))
		case "/models/m":
			if r.Header.Get("Authorization") != "Bearer good" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`[{"generated_text":"Hi"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := NewProber(llmprovider.Options{USDABaseURL: srv.URL, HuggingFaceBaseURL: srv.URL})
	ctx := context.Background()

	if ok, err := p.ProbeUSDA(ctx, "good"); !ok || err != nil {
		t.Errorf("good usda key: %v, %v", ok, err)
	}
	if ok, err := p.ProbeUSDA(ctx, "bad"); ok || err != nil {
		t.Errorf("bad usda key: %v, %v", ok, err)
	}
	if ok, _ := p.ProbeUSDA(ctx, ""); ok {
		t.Error("empty key must be invalid")
	}
	if ok, err := p.ProbeHuggingFace(ctx, "good", "m"); !ok || err != nil {
		t.Errorf("good hf key: %v, %v", ok, err)
	}
	if ok, err := p.ProbeHuggingFace(ctx, "bad", "m"); ok || err != nil {
		t.Errorf("bad hf key: %v, %v", ok, err)
	}
}
