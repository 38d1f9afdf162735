package usecase

import (
	"context"
	"strings"

	"nutricoach/internal/inference"
	"nutricoach/pkg/llmprovider"
)

const LogPrefixGenerate = "internal.inference.usecase.Generate"

func (uc *implUseCase) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", inference.ErrEmptyPrompt
	}
	switch {
	case maxTokens <= 0:
		maxTokens = inference.DefaultMaxTokens
	case maxTokens > inference.MaxTokensLimit:
		maxTokens = inference.MaxTokensLimit
	}

	cfg := uc.cfg
	cfg.MaxNewTokens = maxTokens
	p, err := uc.factory.Build(cfg)
	if err != nil {
		uc.l.Warnf(ctx, "%s: build: %v", LogPrefixGenerate, err)
		return "", err
	}

	resp, err := p.Send(ctx, llmprovider.Request{User: prompt, Query: prompt, MaxTokens: maxTokens})
	if err != nil {
		uc.l.Warnf(ctx, "%s: send: %v", LogPrefixGenerate, err)
		return "", err
	}
	return resp.Text, nil
}
