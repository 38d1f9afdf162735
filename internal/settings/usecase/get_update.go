package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nutricoach/internal/settings"
	"nutricoach/pkg/llmprovider"
)

// Get returns defaults overlaid with the client's stored values.
func (uc *implUseCase) Get(ctx context.Context, clientID string) (settings.Settings, error) {
	if clientID == "" {
		return settings.Settings{}, settings.ErrMissingClientID
	}
	stored, err := uc.repo.ListSettings(ctx, clientID)
	if err != nil {
		return settings.Settings{}, err
	}
	return settings.NewSettings(uc.currentDefaults(), stored), nil
}

// Update writes only the given keys. Blank or masked secrets are ignored so
// a client can send back what Get returned without clobbering credentials.
func (uc *implUseCase) Update(ctx context.Context, clientID string, values map[string]string) (settings.Settings, error) {
	if clientID == "" {
		return settings.Settings{}, settings.ErrMissingClientID
	}

	clean := make(map[string]string, len(values))
	for k, v := range values {
		v = strings.TrimSpace(v)
		norm, skip, err := normalize(k, v)
		if err != nil {
			return settings.Settings{}, err
		}
		if skip {
			continue
		}
		clean[k] = norm
	}

	if err := uc.repo.UpsertSettings(ctx, clientID, clean); err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixUpdate, err)
		return settings.Settings{}, err
	}
	uc.l.Info(ctx, "settings updated", "keys", len(clean))

	return uc.Get(ctx, clientID)
}

func normalize(key, v string) (string, bool, error) {
	if !isKnown(key) {
		return "", false, fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
	}

	switch {
	case settings.IsSecret(key):
		if v == "" || settings.IsMasked(v) {
			return "", true, nil
		}
		return v, false, nil

	case key == settings.KeyProvider:
		switch llmprovider.Kind(v) {
		case llmprovider.KindOpenAI, llmprovider.KindAzure, llmprovider.KindHuggingFace, llmprovider.KindUSDA, llmprovider.KindDemo:
			return v, false, nil
		}
		return "", false, fmt.Errorf("%w: provider %q", settings.ErrInvalidValue, v)

	case key == settings.KeyMaxTokens || key == settings.KeyAutoContinueCount:
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return "", false, fmt.Errorf("%w: %s must be a positive integer", settings.ErrInvalidValue, key)
		}
		return strconv.Itoa(n), false, nil

	case key == settings.KeyAutoContinue || key == settings.KeyDemoMode || key == settings.KeyEnableStartupSuggestions:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", false, fmt.Errorf("%w: %s must be true or false", settings.ErrInvalidValue, key)
		}
		return strconv.FormatBool(b), false, nil

	case key == settings.KeyStartupQuickTopics:
		var topics []string
		if err := json.Unmarshal([]byte(v), &topics); err != nil {
			return "", false, fmt.Errorf("%w: %s must be a JSON array of strings", settings.ErrInvalidValue, key)
		}
		return v, false, nil
	}

	return v, false, nil
}

func isKnown(key string) bool {
	for _, k := range settings.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
