package llmprovider

import (
	"errors"

	"nutricoach/pkg/azure"
)

// Kind names a provider variant. It is also the stored selector value.
type Kind string

const (
	KindOpenAI      Kind = "openai"
	KindAzure       Kind = "azure"
	KindHuggingFace Kind = "hf"
	KindUSDA        Kind = "usda"
	KindDemo        Kind = "demo"
)

// Config is the sealed set of provider configurations. Exactly one is
// active per request.
type Config interface {
	Kind() Kind
	Validate() error
	isConfig()
}

type OpenAIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

type AzureConfig struct {
	Endpoint            string
	APIKey              string
	Deployment          string
	ChatAPIVersion      string
	ResponsesAPIVersion string
	MaxTokens           int
}

type HuggingFaceConfig struct {
	APIKey       string
	Model        string
	MaxNewTokens int
}

type USDAConfig struct {
	APIKey string
}

type DemoConfig struct {
	Text string
}

func (OpenAIConfig) Kind() Kind      { return KindOpenAI }
func (AzureConfig) Kind() Kind       { return KindAzure }
func (HuggingFaceConfig) Kind() Kind { return KindHuggingFace }
func (USDAConfig) Kind() Kind        { return KindUSDA }
func (DemoConfig) Kind() Kind        { return KindDemo }

func (OpenAIConfig) isConfig()      {}
func (AzureConfig) isConfig()       {}
func (HuggingFaceConfig) isConfig() {}
func (USDAConfig) isConfig()        {}
func (DemoConfig) isConfig()        {}

// UsesResponses reports whether the endpoint targets the Responses API.
func (c AzureConfig) UsesResponses() bool {
	return azure.IsResponsesEndpoint(c.Endpoint)
}

func (c OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return configError(KindOpenAI, "OpenAI API key not set. Please set it in settings.")
	}
	if c.Model == "" {
		return configError(KindOpenAI, "OpenAI model not set. Please set it in settings.")
	}
	return nil
}

func (c AzureConfig) Validate() error {
	if c.Endpoint == "" || c.APIKey == "" {
		return configError(KindAzure, "Azure OpenAI endpoint or key not set. Please set them in Settings.")
	}
	if c.Deployment == "" {
		if c.UsesResponses() {
			return configError(KindAzure, "Azure deployment/model not set for the Responses API. Please set it in Settings.")
		}
		return configError(KindAzure, "Azure deployment not set. Please set it in Settings.")
	}
	return nil
}

func (c HuggingFaceConfig) Validate() error {
	if c.APIKey == "" || c.Model == "" {
		return configError(KindHuggingFace, "Hugging Face API key or model not set. Please set them in Settings.")
	}
	return nil
}

func (c USDAConfig) Validate() error {
	if c.APIKey == "" {
		return configError(KindUSDA, "USDA API key not set. Please set it in settings.")
	}
	return nil
}

func (c DemoConfig) Validate() error {
	if c.Text == "" {
		return configError(KindDemo, "demo text is empty")
	}
	return nil
}

func configError(k Kind, msg string) error {
	return &ProviderError{Provider: string(k), Kind: ErrKindConfiguration, Err: errors.New(msg)}
}
