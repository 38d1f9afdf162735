package settings

import (
	"encoding/json"
	"maps"
	"strconv"
	"strings"

	"nutricoach/pkg/llmprovider"
)

// Settings is one client's view: defaults overlaid with stored values.
type Settings struct {
	values map[string]string
}

// NewSettings overlays stored on defaults. Neither map is retained.
func NewSettings(defaults, stored map[string]string) Settings {
	values := make(map[string]string, len(keyTypes))
	maps.Copy(values, defaults)
	maps.Copy(values, stored)
	return Settings{values: values}
}

func (s Settings) String(key string) string {
	return s.values[key]
}

func (s Settings) Bool(key string) bool {
	b, _ := strconv.ParseBool(s.values[key])
	return b
}

// Int returns the positive integer at key or fallback.
func (s Settings) Int(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.values[key]))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s Settings) Provider() llmprovider.Kind {
	return llmprovider.Kind(s.values[KeyProvider])
}

func (s Settings) MaxTokens() int {
	return s.Int(KeyMaxTokens, fallbackMaxTokens)
}

func (s Settings) AutoContinue() bool {
	return s.Bool(KeyAutoContinue)
}

// MaxContinueAttempts is auto_continue_count, defaulting to 2 when
// auto-continue is on and 1 otherwise.
func (s Settings) MaxContinueAttempts() int {
	fallback := 1
	if s.AutoContinue() {
		fallback = fallbackAutoContinueCount
	}
	return s.Int(KeyAutoContinueCount, fallback)
}

// StartupSuggestions is on unless explicitly "false".
func (s Settings) StartupSuggestions() bool {
	return s.values[KeyEnableStartupSuggestions] != "false"
}

// QuickTopics decodes the JSON array at startup_quick_topics.
func (s Settings) QuickTopics() []string {
	var topics []string
	if err := json.Unmarshal([]byte(s.values[KeyStartupQuickTopics]), &topics); err != nil {
		return nil
	}
	return topics
}

// Values returns a copy of every value.
func (s Settings) Values() map[string]string {
	return maps.Clone(s.values)
}

// Masked returns a copy with secrets reduced to their last 4 characters.
func (s Settings) Masked() map[string]string {
	out := s.Values()
	for k, v := range out {
		if IsSecret(k) && v != "" {
			out[k] = Mask(v)
		}
	}
	return out
}

// Mask hides all but the last 4 characters.
func Mask(v string) string {
	if len(v) <= maskKeep {
		return maskPrefix
	}
	return maskPrefix + v[len(v)-maskKeep:]
}

// IsMasked reports whether v looks like Mask output.
func IsMasked(v string) bool {
	return strings.HasPrefix(v, maskPrefix)
}

// Snapshot is the per-request configuration read by the conversation pipeline.
type Snapshot struct {
	Settings  Settings
	Selection llmprovider.Selection
}

// ServerOptions are server-side values the per-client settings cannot override.
type ServerOptions struct {
	Proxy    llmprovider.HuggingFaceConfig
	DemoText string
}

// ValidateInput optionally overrides the stored credential being probed.
type ValidateInput struct {
	Target string
	APIKey string
	Model  string
}
