package llmprovider

import (
	"fmt"
	"net/http"
	"time"

	"nutricoach/pkg/azure"
	"nutricoach/pkg/huggingface"
	"nutricoach/pkg/openai"
	"nutricoach/pkg/usda"
)

// Options carries server-side endpoints shared by every request.
// Empty base URLs use each client's default.
type Options struct {
	OpenAIBaseURL      string
	HuggingFaceBaseURL string
	USDABaseURL        string
	Timeout            time.Duration
	HTTPClient         *http.Client
}

// Factory builds a Provider for one Config.
type Factory interface {
	Build(cfg Config) (Provider, error)
}

type factory struct {
	opts Options
}

// NewFactory returns the default Factory backed by the HTTP clients.
func NewFactory(opts Options) Factory {
	return &factory{opts: opts}
}

// Build validates cfg and constructs the matching adapter.
func (f *factory) Build(cfg Config) (Provider, error) {
	if cfg == nil {
		return nil, &ProviderError{Provider: "none", Kind: ErrKindConfiguration, Err: fmt.Errorf("%w: no provider selected", ErrUnknownProvider)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Every Config variant must have a case here.
	switch c := cfg.(type) {
	case OpenAIConfig:
		client, err := openai.New(openai.Config{
			APIKey:     c.APIKey,
			BaseURL:    f.opts.OpenAIBaseURL,
			Timeout:    f.opts.Timeout,
			HTTPClient: f.opts.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client, c), nil

	case AzureConfig:
		client, err := azure.New(azure.Config{
			APIKey:     c.APIKey,
			Timeout:    f.opts.Timeout,
			HTTPClient: f.opts.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create azure client: %w", err)
		}
		if c.UsesResponses() {
			return NewAzureResponsesAdapter(client, c), nil
		}
		return NewAzureChatAdapter(client, c), nil

	case HuggingFaceConfig:
		client, err := huggingface.New(huggingface.Config{
			APIKey:     c.APIKey,
			BaseURL:    f.opts.HuggingFaceBaseURL,
			Timeout:    f.opts.Timeout,
			HTTPClient: f.opts.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create huggingface client: %w", err)
		}
		return NewHuggingFaceAdapter(client, c), nil

	case USDAConfig:
		client, err := usda.New(usda.Config{
			APIKey:     c.APIKey,
			BaseURL:    f.opts.USDABaseURL,
			Timeout:    f.opts.Timeout,
			HTTPClient: f.opts.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create usda client: %w", err)
		}
		return NewUSDAAdapter(client), nil

	case DemoConfig:
		return NewDemoAdapter(c), nil

	default:
		return nil, &ProviderError{Provider: string(cfg.Kind()), Kind: ErrKindConfiguration, Err: fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Kind())}
	}
}
