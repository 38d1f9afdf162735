package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"nutricoach/config"
	_ "nutricoach/docs" // Swagger docs
	"nutricoach/internal/conversation"
	"nutricoach/internal/conversation/stream"
	conversationUC "nutricoach/internal/conversation/usecase"
	"nutricoach/internal/httpserver"
	inferenceUC "nutricoach/internal/inference/usecase"
	"nutricoach/internal/middleware"
	profileRepo "nutricoach/internal/profile/repository/sqlite"
	profileUC "nutricoach/internal/profile/usecase"
	recipeUC "nutricoach/internal/recipe/usecase"
	"nutricoach/internal/settings"
	settingsRepo "nutricoach/internal/settings/repository/sqlite"
	settingsUC "nutricoach/internal/settings/usecase"
	tipUC "nutricoach/internal/tip/usecase"
	"nutricoach/pkg/llmprovider"
	"nutricoach/pkg/log"
	"nutricoach/pkg/rss"
	"nutricoach/pkg/sqlite"
)

// @title       NutriCoach API
// @description Nutrition-advice chat: health profile, provider-routed food classification, daily tips and recipes.
// @version     1
// @host        localhost:4001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NutriCoach...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Providers
	providerOpts := llmprovider.Options{
		OpenAIBaseURL:      cfg.Providers.OpenAIBaseURL,
		HuggingFaceBaseURL: cfg.Providers.HuggingFaceBaseURL,
		USDABaseURL:        cfg.Providers.USDABaseURL,
		Timeout:            cfg.Providers.Timeout,
	}
	factory := llmprovider.NewFactory(providerOpts)

	proxy := llmprovider.HuggingFaceConfig{
		APIKey:       cfg.InferenceProxy.APIKey,
		Model:        cfg.InferenceProxy.Model,
		MaxNewTokens: cfg.InferenceProxy.MaxNewTokens,
	}
	proxyFactory := factory
	if cfg.InferenceProxy.BaseURL != "" {
		proxyOpts := providerOpts
		proxyOpts.HuggingFaceBaseURL = cfg.InferenceProxy.BaseURL
		proxyFactory = llmprovider.NewFactory(proxyOpts)
	}
	router := llmprovider.NewRouter(factory, logger, cfg.Providers.Timeout,
		llmprovider.WithLinkFactory(llmprovider.LinkProxy, proxyFactory),
	)
	if proxy.APIKey == "" {
		logger.Warn(ctx, "Inference proxy has no API key: quota fallback will skip the proxy link")
	}

	// 5. Domains
	settingsUseCase := settingsUC.New(
		settingsRepo.New(db, logger),
		logger,
		cfg.Defaults,
		settings.ServerOptions{Proxy: proxy, DemoText: cfg.Demo.Text},
		settingsUC.NewProber(providerOpts),
	)
	profileUseCase := profileUC.New(profileRepo.New(db, logger), logger)
	tipUseCase := tipUC.New(logger, rss.New(rss.Config{Timeout: cfg.DailyTip.Timeout}), tipUC.Config{
		RSSURL:   cfg.DailyTip.RSSURL,
		CacheTTL: cfg.DailyTip.CacheTTL,
	})
	recipeUseCase := recipeUC.New(logger, recipeUC.Config{
		SourceURL: cfg.Recipes.SourceURL,
		Count:     cfg.Recipes.Count,
		Timeout:   cfg.Recipes.Timeout,
	})

	hub := stream.NewHub(stream.DefaultBuffer)
	conversationUseCase := conversationUC.New(logger, conversationUC.Deps{
		Store:    conversation.NewStore(cfg.Conversation.MaxSessions, cfg.Conversation.SessionTTL, hub),
		Sender:   router,
		Settings: settingsUseCase,
		Profile:  profileUseCase,
		Tips:     tipUseCase,
		Recipes:  recipeUseCase,
	})
	inferenceUseCase := inferenceUC.New(logger, proxyFactory, proxy)

	// Hot reload: only the settings defaults are applied without a restart.
	if config.Watch(func(next *config.Config, err error) {
		if err != nil {
			logger.Warnf(ctx, "Config reload rejected: %v", err)
			return
		}
		settingsUseCase.SetDefaults(next.Defaults)
		logger.Info(ctx, "Settings defaults reloaded")
	}) {
		logger.Info(ctx, "Watching config file for changes")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		StaticDir:   cfg.Static.Dir,
		Middleware: middleware.Config{
			ClientCookie:    middleware.DefaultClientCookie,
			CookieSecure:    cfg.Access.CookieSecure,
			AccessToken:     cfg.Access.Token,
			AccessCookie:    cfg.Access.CookieName,
			AccessQuery:     cfg.Access.QueryParam,
			RateLimitPerMin: cfg.RateLimit.PerMin,
			CORSOrigins:     cfg.CORS.AllowedOrigins,
		},
		Ready:          db.PingContext,
		SettingsUC:     settingsUseCase,
		ProfileUC:      profileUseCase,
		TipUC:          tipUseCase,
		ConversationUC: conversationUseCase,
		InferenceUC:    inferenceUseCase,
		Hub:            hub,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	g.Go(func() error {
		// Warm the daily tip cache so the first visitor does not wait on the feed.
		if _, ok := tipUseCase.DailyTip(gctx); !ok {
			logger.Warn(gctx, "Daily tip feed unavailable at startup")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
