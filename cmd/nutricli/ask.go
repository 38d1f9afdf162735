package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nutricoach/internal/classifier"
	"nutricoach/internal/conversation"
	"nutricoach/internal/model"
	"nutricoach/pkg/llmprovider"
)

type askOptions struct {
	provider            string
	apiKey              string
	model               string
	endpoint            string
	deployment          string
	chatAPIVersion      string
	responsesAPIVersion string
	baseURL             string
	maxTokens           int
	usdaKey             string
	demo                bool
	demoText            string

	conditions []string
	allergies  string
	custom     []string
}

func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a provider about a food",
		Long: `Sends one question with an optional health profile through the provider
router and prints the answer with its classification.

Example:
  nutricli ask --provider openai --api-key $OPENAI_API_KEY --condition diabetes "Is mango ok?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, root, opts, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.provider, "provider", string(llmprovider.KindOpenAI), "Provider: openai, azure, hf, usda or demo")
	f.StringVar(&opts.apiKey, "api-key", "", "Provider API key")
	f.StringVar(&opts.model, "model", "gpt-5-mini", "Model name (openai, hf)")
	f.StringVar(&opts.endpoint, "endpoint", "", "Azure endpoint")
	f.StringVar(&opts.deployment, "deployment", "", "Azure deployment (defaults to --model)")
	f.StringVar(&opts.chatAPIVersion, "azure-chat-api-version", "2023-10-01-preview", "Azure chat API version")
	f.StringVar(&opts.responsesAPIVersion, "azure-responses-api-version", "2025-04-01-preview", "Azure responses API version")
	f.StringVar(&opts.baseURL, "base-url", "", "Override the provider base URL")
	f.IntVar(&opts.maxTokens, "max-tokens", 1024, "Maximum output tokens")
	f.StringVar(&opts.usdaKey, "usda-key", "", "USDA key, used directly or as quota fallback")
	f.BoolVar(&opts.demo, "demo", false, "Fall back to the demo text on quota errors")
	f.StringVar(&opts.demoText, "demo-text", "Demo mode: configure a provider for real advice.", "Demo answer text")
	f.StringSliceVar(&opts.conditions, "condition", nil, "Health condition (repeatable)")
	f.StringVar(&opts.allergies, "allergies", "", "Comma-separated allergies")
	f.StringSliceVar(&opts.custom, "custom", nil, "Custom health issue (repeatable)")

	return cmd
}

func runAsk(cmd *cobra.Command, root *rootOptions, opts *askOptions, question string) error {
	active, err := opts.config()
	if err != nil {
		return err
	}

	profile := model.EmptyProfile().WithAllergies(opts.allergies)
	profile.Conditions = append(profile.Conditions, opts.conditions...)
	for _, c := range opts.custom {
		profile = profile.AddCustom(c)
	}
	pj := conversation.ProfileJSON(profile.Normalize())

	router := llmprovider.NewRouter(llmprovider.NewFactory(llmprovider.Options{
		OpenAIBaseURL:      opts.baseURL,
		HuggingFaceBaseURL: opts.baseURL,
		USDABaseURL:        opts.baseURL,
		Timeout:            root.timeout,
	}), root.logger, root.timeout)

	ctx, cancel := context.WithTimeout(cmd.Context(), root.timeout)
	defer cancel()

	resp, err := router.Send(ctx, llmprovider.Selection{
		Active:   active,
		Fallback: llmprovider.QuotaChain(llmprovider.HuggingFaceConfig{}, opts.usdaKey, opts.demo, opts.demoText),
	}, llmprovider.Request{
		System:    conversation.SystemPreamble(pj),
		User:      conversation.UserContent(pj, question),
		Query:     question,
		MaxTokens: opts.maxTokens,
	})
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Text)
	if c := classifier.Classify(resp.Text); c != model.ClassificationNone {
		fmt.Fprintf(out, "\nClassification: %s (%s)\n", c, resp.ProviderName)
	}
	if resp.Truncated {
		fmt.Fprintln(cmd.ErrOrStderr(), "answer was truncated; rerun with a larger --max-tokens")
	}
	return nil
}

// config builds the provider variant named by --provider.
func (o *askOptions) config() (llmprovider.Config, error) {
	switch llmprovider.Kind(o.provider) {
	case llmprovider.KindOpenAI:
		return llmprovider.OpenAIConfig{APIKey: o.apiKey, Model: o.model, MaxTokens: o.maxTokens}, nil
	case llmprovider.KindAzure:
		deployment := o.deployment
		if deployment == "" {
			deployment = o.model
		}
		return llmprovider.AzureConfig{
			Endpoint:            o.endpoint,
			APIKey:              o.apiKey,
			Deployment:          deployment,
			ChatAPIVersion:      o.chatAPIVersion,
			ResponsesAPIVersion: o.responsesAPIVersion,
			MaxTokens:           o.maxTokens,
		}, nil
	case llmprovider.KindHuggingFace:
		return llmprovider.HuggingFaceConfig{APIKey: o.apiKey, Model: o.model, MaxNewTokens: o.maxTokens}, nil
	case llmprovider.KindUSDA:
		key := o.usdaKey
		if key == "" {
			key = o.apiKey
		}
		return llmprovider.USDAConfig{APIKey: key}, nil
	case llmprovider.KindDemo:
		return llmprovider.DemoConfig{Text: o.demoText}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", o.provider)
	}
}
