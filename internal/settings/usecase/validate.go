package usecase

import (
	"context"
	"errors"
	"fmt"

	"nutricoach/internal/settings"
	"nutricoach/pkg/huggingface"
	"nutricoach/pkg/llmprovider"
	"nutricoach/pkg/usda"
)

// Prober checks a credential against the live service.
type Prober interface {
	ProbeUSDA(ctx context.Context, apiKey string) (bool, error)
	ProbeHuggingFace(ctx context.Context, apiKey, model string) (bool, error)
}

// Validate probes the USDA key or the Hugging Face key and model. Values in
// the input override the stored ones.
func (uc *implUseCase) Validate(ctx context.Context, clientID string, input settings.ValidateInput) (bool, error) {
	s, err := uc.Get(ctx, clientID)
	if err != nil {
		return false, err
	}
	pick := func(override, key string) string {
		if override != "" && !settings.IsMasked(override) {
			return override
		}
		return s.String(key)
	}

	var ok bool
	switch input.Target {
	case settings.TargetUSDA:
		ok, err = uc.probe.ProbeUSDA(ctx, pick(input.APIKey, settings.KeyUSDAAPIKey))
	case settings.TargetHuggingFace:
		ok, err = uc.probe.ProbeHuggingFace(ctx, pick(input.APIKey, settings.KeyHFAPIKey), pick(input.Model, settings.KeyHFModel))
	default:
		return false, fmt.Errorf("%w: %s", settings.ErrUnknownTarget, input.Target)
	}
	if err != nil {
		uc.l.Warn(ctx, "credential probe failed", "target", input.Target, "error", err.Error())
		return false, nil
	}
	return ok, nil
}

type httpProber struct {
	opts llmprovider.Options
}

// NewProber returns a Prober that issues the same minimal requests as the
// settings screen: an "apple" search and a one-token generation.
func NewProber(opts llmprovider.Options) Prober {
	return &httpProber{opts: opts}
}

func (p *httpProber) ProbeUSDA(ctx context.Context, apiKey string) (bool, error) {
	if apiKey == "" {
		return false, nil
	}
	client, err := usda.New(usda.Config{APIKey: apiKey, BaseURL: p.opts.USDABaseURL, Timeout: p.opts.Timeout, HTTPClient: p.opts.HTTPClient})
	if err != nil {
		return false, err
	}
	if _, err := client.Search(ctx, "apple", 1); err != nil {
		var apiErr *usda.APIError
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *httpProber) ProbeHuggingFace(ctx context.Context, apiKey, model string) (bool, error) {
	if apiKey == "" || model == "" {
		return false, nil
	}
	client, err := huggingface.New(huggingface.Config{APIKey: apiKey, BaseURL: p.opts.HuggingFaceBaseURL, Timeout: p.opts.Timeout, HTTPClient: p.opts.HTTPClient})
	if err != nil {
		return false, err
	}
	if _, err := client.Generate(ctx, huggingface.Request{Model: model, Inputs: "Hello", MaxNewTokens: 1}); err != nil {
		var apiErr *huggingface.APIError
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
