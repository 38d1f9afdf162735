package llmprovider

import (
	"context"
	"errors"
	"time"

	"nutricoach/pkg/log"
)

// Router sends a request to the selected provider and walks the quota
// fallback chain when OpenAI reports exhausted quota.
type Router struct {
	factory Factory
	links   map[string]Factory
	logger  log.Logger
	timeout time.Duration
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLinkFactory builds the named fallback link with f instead of the
// primary factory, e.g. to reach the inference proxy on its own host.
func WithLinkFactory(name string, f Factory) RouterOption {
	return func(r *Router) {
		if f != nil {
			r.links[name] = f
		}
	}
}

// NewRouter creates a Router. A zero timeout leaves the caller's context as is.
func NewRouter(factory Factory, logger log.Logger, timeout time.Duration, opts ...RouterOption) *Router {
	r := &Router{factory: factory, links: map[string]Factory{}, logger: logger, timeout: timeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) linkFactory(name string) Factory {
	if f, ok := r.links[name]; ok {
		return f
	}
	return r.factory
}

// Send issues exactly one request to the active provider, plus fallback
// requests only after a quota rejection.
func (r *Router) Send(ctx context.Context, sel Selection, req Request) (*Response, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	provider, err := r.factory.Build(sel.Active)
	if err != nil {
		return nil, err
	}

	resp, err := provider.Send(ctx, req)
	if err == nil {
		r.logSuccess(ctx, provider, resp)
		return resp, nil
	}
	r.logFailure(ctx, provider.Name(), "primary", err)

	if !errors.Is(err, ErrInsufficientQuota) {
		return nil, err
	}

	quotaErr := err
	for _, link := range sel.Fallback {
		if ctx.Err() != nil {
			break
		}
		resp, err := link.try(ctx, r.linkFactory(link.Name), req)
		if err == nil {
			r.logger.Info(ctx, "LLM fallback successful",
				"link", link.Name,
				"provider", resp.ProviderName,
				"truncated", resp.Truncated,
			)
			return resp, nil
		}
		if errors.Is(err, ErrLinkSkipped) {
			r.logger.Debug(ctx, "LLM fallback skipped", "link", link.Name)
			continue
		}
		r.logFailure(ctx, link.Name, "fallback", err)
	}

	return nil, quotaErr
}

// logSuccess logs successful generation with metrics
func (r *Router) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	args := []any{
		"provider", provider.Name(),
		"model", provider.Model(),
		"truncated", resp.Truncated,
	}
	if resp.Usage != nil {
		args = append(args, "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	}
	r.logger.Info(ctx, append([]any{"LLM generation successful"}, args...)...)
}

// logFailure logs failed generation attempts
func (r *Router) logFailure(ctx context.Context, name, link string, err error) {
	r.logger.Warn(ctx, "LLM generation failed",
		"provider", name,
		"link", link,
		"error", err.Error(),
	)
}
