package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"nutricoach/internal/model"
	"nutricoach/internal/recipe"
)

func (uc *implUseCase) Suggest(ctx context.Context, p model.UserProfile) []model.Recipe {
	anchors, err := uc.fetch(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: using curated list: %v", LogPrefixSuggest, err)
		return slices.Clone(recipe.Curated)
	}
	items := recipe.Select(anchors, uc.cfg.Count, p)
	if len(items) == 0 {
		uc.l.Infof(ctx, "%s: no usable links on %s, using curated list", LogPrefixSuggest, uc.cfg.SourceURL)
		return slices.Clone(recipe.Curated)
	}
	return items
}

func (uc *implUseCase) fetch(ctx context.Context) ([]recipe.Anchor, error) {
	base, err := url.Parse(uc.cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := uc.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("source returned %d", resp.StatusCode)
	}
	return recipe.Extract(io.LimitReader(resp.Body, maxPageBytes), base)
}
