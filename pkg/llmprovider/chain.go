package llmprovider

import "context"

// Link names.
const (
	LinkProxy = "proxy"
	LinkUSDA  = "usda"
	LinkDemo  = "demo"
)

// Link is one step of the quota fallback chain. A nil Config means the
// link is not configured and is skipped.
type Link struct {
	Name   string
	Config Config
}

// Chain is tried in order after an OpenAI quota rejection.
type Chain []Link

// ProxyLink uses the server's inference proxy (Hugging Face protocol).
func ProxyLink(cfg HuggingFaceConfig) Link {
	if cfg.APIKey == "" || cfg.Model == "" {
		return Link{Name: LinkProxy}
	}
	return Link{Name: LinkProxy, Config: cfg}
}

// USDALink answers from the nutrient database when a key exists.
func USDALink(apiKey string) Link {
	if apiKey == "" {
		return Link{Name: LinkUSDA}
	}
	return Link{Name: LinkUSDA, Config: USDAConfig{APIKey: apiKey}}
}

// DemoLink returns fixed text when demo mode is on.
func DemoLink(enabled bool, text string) Link {
	if !enabled || text == "" {
		return Link{Name: LinkDemo}
	}
	return Link{Name: LinkDemo, Config: DemoConfig{Text: text}}
}

// QuotaChain is the standard order: proxy, USDA, demo.
func QuotaChain(proxy HuggingFaceConfig, usdaKey string, demoMode bool, demoText string) Chain {
	return Chain{ProxyLink(proxy), USDALink(usdaKey), DemoLink(demoMode, demoText)}
}

func (l Link) try(ctx context.Context, f Factory, req Request) (*Response, error) {
	if l.Config == nil {
		return nil, ErrLinkSkipped
	}
	p, err := f.Build(l.Config)
	if err != nil {
		return nil, err
	}
	return p.Send(ctx, req)
}

// Selection is the per-request provider choice built from stored settings.
type Selection struct {
	Active   Config
	Fallback Chain
}
