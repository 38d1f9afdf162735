package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"nutricoach/internal/conversation"
	"nutricoach/internal/conversation/stream"
	"nutricoach/internal/inference"
	"nutricoach/internal/middleware"
	"nutricoach/internal/profile"
	"nutricoach/internal/settings"
	"nutricoach/internal/tip"
	"nutricoach/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Domains
	settingsUC     settings.UseCase
	profileUC      profile.UseCase
	tipUC          tip.UseCase
	conversationUC conversation.UseCase
	inferenceUC    inference.UseCase
	hub            *stream.Hub
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	StaticDir   string
	Middleware  middleware.Config
	// Ready is polled by /ready, e.g. a database ping.
	Ready func(ctx context.Context) error

	SettingsUC     settings.UseCase
	ProfileUC      profile.UseCase
	TipUC          tip.UseCase
	ConversationUC conversation.UseCase
	InferenceUC    inference.UseCase
	Hub            *stream.Hub
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		staticDir:      cfg.StaticDir,
		mw:             middleware.New(logger, cfg.Middleware),
		ready:          cfg.Ready,
		settingsUC:     cfg.SettingsUC,
		profileUC:      cfg.ProfileUC,
		tipUC:          cfg.TipUC,
		conversationUC: cfg.ConversationUC,
		inferenceUC:    cfg.InferenceUC,
		hub:            cfg.Hub,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.settingsUC == nil {
		return errors.New("settings usecase is required")
	}
	if srv.conversationUC != nil && srv.hub == nil {
		return errors.New("conversation hub is required")
	}
	return nil
}
