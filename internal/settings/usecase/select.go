package usecase

import (
	"context"

	"nutricoach/internal/settings"
	"nutricoach/pkg/llmprovider"
)

// Select reads the client's settings and builds the active provider config
// plus the quota fallback chain.
func (uc *implUseCase) Select(ctx context.Context, clientID string) (settings.Snapshot, error) {
	s, err := uc.Get(ctx, clientID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixSelect, err)
		return settings.Snapshot{}, err
	}
	return settings.Snapshot{
		Settings:  s,
		Selection: uc.selection(s),
	}, nil
}

func (uc *implUseCase) selection(s settings.Settings) llmprovider.Selection {
	return llmprovider.Selection{
		Active: activeConfig(s, uc.server.DemoText),
		Fallback: llmprovider.QuotaChain(
			uc.server.Proxy,
			s.String(settings.KeyUSDAAPIKey),
			s.Bool(settings.KeyDemoMode),
			uc.server.DemoText,
		),
	}
}

// activeConfig maps the stored selector to a Config variant. An unknown
// selector yields nil, which the factory reports as a configuration error.
func activeConfig(s settings.Settings, demoText string) llmprovider.Config {
	switch s.Provider() {
	case llmprovider.KindOpenAI:
		return llmprovider.OpenAIConfig{
			APIKey:    s.String(settings.KeyOpenAIAPIKey),
			Model:     s.String(settings.KeyOpenAIModel),
			MaxTokens: s.MaxTokens(),
		}
	case llmprovider.KindAzure:
		deployment := s.String(settings.KeyAzureDeployment)
		if deployment == "" {
			deployment = s.String(settings.KeyOpenAIModel)
		}
		return llmprovider.AzureConfig{
			Endpoint:            s.String(settings.KeyAzureEndpoint),
			APIKey:              s.String(settings.KeyAzureKey),
			Deployment:          deployment,
			ChatAPIVersion:      s.String(settings.KeyAzureChatAPIVersion),
			ResponsesAPIVersion: s.String(settings.KeyAzureResponsesAPIVersion),
			MaxTokens:           s.MaxTokens(),
		}
	case llmprovider.KindHuggingFace:
		return llmprovider.HuggingFaceConfig{
			APIKey:       s.String(settings.KeyHFAPIKey),
			Model:        s.String(settings.KeyHFModel),
			MaxNewTokens: s.MaxTokens(),
		}
	case llmprovider.KindUSDA:
		return llmprovider.USDAConfig{APIKey: s.String(settings.KeyUSDAAPIKey)}
	case llmprovider.KindDemo:
		return llmprovider.DemoConfig{Text: demoText}
	default:
		return nil
	}
}
