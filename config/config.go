package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig
	Access     AccessConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
	Static     StaticConfig

	// NutriCoach specifics
	DailyTip       DailyTipConfig
	Recipes        RecipesConfig
	Conversation   ConversationConfig
	Providers      ProvidersConfig
	InferenceProxy InferenceProxyConfig
	Demo           DemoConfig

	// Defaults are the initial values of every persisted setting key.
	Defaults map[string]string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// AccessConfig enables the shared-token gate when Token is set.
type AccessConfig struct {
	Token        string
	CookieName   string
	QueryParam   string
	CookieSecure bool
}

type RateLimitConfig struct {
	PerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StaticConfig struct {
	Dir string
}

type DailyTipConfig struct {
	RSSURL   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type RecipesConfig struct {
	SourceURL string
	Timeout   time.Duration
	Count     int
}

type ConversationConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// ProvidersConfig holds server-side endpoints. Per-client credentials live in
// the settings store.
type ProvidersConfig struct {
	OpenAIBaseURL            string
	AzureChatAPIVersion      string
	AzureResponsesAPIVersion string
	HuggingFaceBaseURL       string
	USDABaseURL              string
	Timeout                  time.Duration
}

// InferenceProxyConfig is the server's own Hugging Face credential, used by
// /api/v1/inference and the quota fallback.
type InferenceProxyConfig struct {
	APIKey       string
	Model        string
	BaseURL      string
	MaxNewTokens int
}

type DemoConfig struct {
	Text string
}

// Load loads configuration using Viper.
// The file is config.yaml, searched in ./config, . and /etc/nutricoach/.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/nutricoach/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build()
}

// Watch calls onChange with the re-read configuration whenever the config
// file changes. It reports false when no config file was loaded.
func Watch(onChange func(cfg *Config, err error)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(build())
	})
	viper.WatchConfig()
	return true
}

func build() (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")

	cfg.Access.Token = expandEnvVar(viper.GetString("access.token"))
	if token := viper.GetString("access_token"); token != "" {
		cfg.Access.Token = token
	}
	cfg.Access.CookieName = viper.GetString("access.cookie_name")
	cfg.Access.QueryParam = viper.GetString("access.query_param")
	cfg.Access.CookieSecure = viper.GetBool("access.cookie_secure")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.CORS.AllowedOrigins = splitList(strings.Join(viper.GetStringSlice("cors.allowed_origins"), ","))
	cfg.Static.Dir = viper.GetString("static.dir")

	// NutriCoach specifics
	cfg.DailyTip.RSSURL = viper.GetString("daily_tip.rss_url")
	cfg.DailyTip.Timeout = viper.GetDuration("daily_tip.timeout")
	cfg.DailyTip.CacheTTL = viper.GetDuration("daily_tip.cache_ttl")

	cfg.Recipes.SourceURL = viper.GetString("recipes.source_url")
	cfg.Recipes.Timeout = viper.GetDuration("recipes.timeout")
	cfg.Recipes.Count = viper.GetInt("recipes.count")

	cfg.Conversation.SessionTTL = viper.GetDuration("conversation.session_ttl")
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")

	cfg.Providers.OpenAIBaseURL = viper.GetString("providers.openai.base_url")
	cfg.Providers.AzureChatAPIVersion = viper.GetString("providers.azure.chat_api_version")
	cfg.Providers.AzureResponsesAPIVersion = viper.GetString("providers.azure.responses_api_version")
	cfg.Providers.HuggingFaceBaseURL = viper.GetString("providers.huggingface.base_url")
	cfg.Providers.USDABaseURL = viper.GetString("providers.usda.base_url")
	cfg.Providers.Timeout = viper.GetDuration("providers.timeout")

	cfg.InferenceProxy.APIKey = expandEnvVar(viper.GetString("inference_proxy.api_key"))
	if hfToken := viper.GetString("hf_api_token"); hfToken != "" {
		cfg.InferenceProxy.APIKey = hfToken
	}
	cfg.InferenceProxy.Model = viper.GetString("inference_proxy.model")
	cfg.InferenceProxy.BaseURL = viper.GetString("inference_proxy.base_url")
	cfg.InferenceProxy.MaxNewTokens = viper.GetInt("inference_proxy.max_new_tokens")

	cfg.Demo.Text = viper.GetString("demo.text")

	cfg.Defaults = make(map[string]string, len(settingDefaults))
	for key := range settingDefaults {
		cfg.Defaults[key] = viper.GetString("defaults." + key)
	}
	// API versions fall back to the server-wide provider settings.
	if cfg.Defaults["azure_chat_api_version"] == "" {
		cfg.Defaults["azure_chat_api_version"] = cfg.Providers.AzureChatAPIVersion
	}
	if cfg.Defaults["azure_responses_api_version"] == "" {
		cfg.Defaults["azure_responses_api_version"] = cfg.Providers.AzureResponsesAPIVersion
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if cfg.Conversation.MaxSessions <= 0 {
		return fmt.Errorf("conversation.max_sessions must be positive")
	}
	return nil
}

// settingDefaults mirrors the settings screen's initial values. Keys with an
// empty value have no default but can still be seeded from config or env.
var settingDefaults = map[string]string{
	"provider":                    "azure",
	"openai_api_key":              "",
	"openai_model":                "gpt-5-mini",
	"azure_endpoint":              "",
	"azure_key":                   "",
	"azure_deployment":            "",
	"azure_chat_api_version":      "",
	"azure_responses_api_version": "",
	"hf_api_key":                  "",
	"hf_model":                    "",
	"usda_api_key":                "",
	"max_tokens":                  "32768",
	"auto_continue":               "false",
	"auto_continue_count":         "2",
	"demo_mode":                   "false",
	"enable_startup_suggestions":  "true",
	"startup_quick_topics":        `["almond milk","salmon","banana smoothie","quinoa salad"]`,
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 4001)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "data/nutricoach.db")
	viper.SetDefault("access.cookie_name", "nutri_access")
	viper.SetDefault("access.query_param", "token")
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("static.dir", "")

	viper.SetDefault("daily_tip.rss_url", "https://www.theguardian.com/food/rss")
	viper.SetDefault("daily_tip.timeout", "10s")
	viper.SetDefault("daily_tip.cache_ttl", "30m")
	viper.SetDefault("recipes.source_url", "https://www.thegoodtrade.com/features/healthy-recipe-blogs/")
	viper.SetDefault("recipes.timeout", "10s")
	viper.SetDefault("recipes.count", 3)
	viper.SetDefault("conversation.session_ttl", "24h")
	viper.SetDefault("conversation.max_sessions", 10000)

	viper.SetDefault("providers.azure.chat_api_version", "2023-10-01-preview")
	viper.SetDefault("providers.azure.responses_api_version", "2025-04-01-preview")
	viper.SetDefault("providers.timeout", "60s")
	viper.SetDefault("inference_proxy.model", "fofr/sdxl-emoji")
	viper.SetDefault("inference_proxy.max_new_tokens", 150)
	viper.SetDefault("demo.text", "Demo mode: this is a sample answer. Configure a provider in Settings for real advice.")

	for key, value := range settingDefaults {
		viper.SetDefault("defaults."+key, value)
	}
}

// splitList splits a comma-separated value. The list may come from a yaml
// array or from a single env string.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	return os.Getenv(value[2 : len(value)-1])
}
