package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()
	t.Cleanup(viper.Reset)
}

func TestBuildDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if cfg.HTTPServer.Port != 4001 {
		t.Errorf("port = %d, want 4001", cfg.HTTPServer.Port)
	}
	if cfg.DailyTip.RSSURL != "https://www.theguardian.com/food/rss" {
		t.Errorf("rss url = %q", cfg.DailyTip.RSSURL)
	}
	if cfg.Conversation.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl = %v", cfg.Conversation.SessionTTL)
	}

	want := map[string]string{
		"provider":                    "azure",
		"openai_model":                "gpt-5-mini",
		"max_tokens":                  "32768",
		"auto_continue":               "false",
		"auto_continue_count":         "2",
		"azure_chat_api_version":      "2023-10-01-preview",
		"azure_responses_api_version": "2025-04-01-preview",
		"enable_startup_suggestions":  "true",
	}
	for k, v := range want {
		if got := cfg.Defaults[k]; got != v {
			t.Errorf("Defaults[%q] = %q, want %q", k, got, v)
		}
	}
	if len(cfg.Defaults) != len(settingDefaults) {
		t.Errorf("len(Defaults) = %d, want %d", len(cfg.Defaults), len(settingDefaults))
	}
}

func TestBuildEnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("HTTP_SERVER_PORT", "5050")
	t.Setenv("DEFAULTS_PROVIDER", "openai")
	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if cfg.HTTPServer.Port != 5050 {
		t.Errorf("port = %d, want 5050", cfg.HTTPServer.Port)
	}
	if cfg.Defaults["provider"] != "openai" {
		t.Errorf("provider default = %q", cfg.Defaults["provider"])
	}
	if cfg.Access.Token != "secret" {
		t.Errorf("access token = %q", cfg.Access.Token)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestBuildRejectsBadPort(t *testing.T) {
	resetViper(t)
	t.Setenv("HTTP_SERVER_PORT", "70000")

	if _, err := build(); err == nil {
		t.Fatal("build() error = nil, want port error")
	}
}

func TestWatchWithoutFile(t *testing.T) {
	resetViper(t)

	if Watch(func(*Config, error) {}) {
		t.Fatal("Watch() = true without a config file")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitList() = %v", got)
	}
	if splitList("") != nil {
		t.Fatal("splitList(\"\") should be nil")
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("NUTRI_TEST_TOKEN", "hf_123")

	if got := expandEnvVar("${NUTRI_TEST_TOKEN}"); got != "hf_123" {
		t.Errorf("expandEnvVar() = %q", got)
	}
	if got := expandEnvVar("${NUTRI_TEST_UNSET}"); got != "" {
		t.Errorf("unset var = %q, want empty", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("plain = %q", got)
	}
}
