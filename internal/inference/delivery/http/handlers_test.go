package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nutricoach/internal/inference"
	"nutricoach/pkg/log"
)

type mockUseCase struct {
	text string
	err  error
}

func (m mockUseCase) Generate(_ context.Context, prompt string, _ int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", inference.ErrEmptyPrompt
	}
	return m.text, m.err
}

func TestGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		uc       mockUseCase
		body     string
		wantCode int
		wantText string
	}{
		{name: "ok", uc: mockUseCase{text: "hi"}, body: `{"prompt":"hello"}`, wantCode: http.StatusOK, wantText: "hi"},
		{name: "provider error", uc: mockUseCase{err: errors.New("down")}, body: `{"prompt":"hello"}`, wantCode: http.StatusOK, wantText: "Error generating text: down"},
		{name: "empty prompt", body: `{"prompt":" "}`, wantCode: http.StatusBadRequest},
		{name: "bad body", body: `nope`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			RegisterRoutes(r.Group("/api/v1/inference"), New(log.NewNop(), tt.uc))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/inference", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantText == "" {
				return
			}
			var env struct {
				Data generateResp `json:"data"`
			}
			json.Unmarshal(rec.Body.Bytes(), &env)
			if env.Data.Text != tt.wantText {
				t.Errorf("text = %q, want %q", env.Data.Text, tt.wantText)
			}
		})
	}
}
