package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nutricoach/internal/model"
)

const apiPrefix = "/api/v1"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}
	srv.registerStatic()

	return nil
}

// registerMiddlewares installs the global chain. CORS runs before the gate
// so preflight requests are answered without credentials.
func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.CORS(),
		srv.mw.AccessGate(),
		srv.mw.RateLimit(),
		srv.mw.ClientID(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group(apiPrefix)

	srv.setupSettingsDomain(ctx, api)

	if srv.profileUC != nil {
		srv.setupProfileDomain(ctx, api)
	} else {
		srv.l.Infof(ctx, "Profile usecase not configured, skipping profile routes")
	}

	if srv.tipUC != nil {
		srv.setupTipDomain(ctx, srv.gin)
	} else {
		srv.l.Infof(ctx, "Tip usecase not configured, skipping /daily-tip")
	}

	if srv.conversationUC != nil {
		srv.setupConversationDomain(ctx, api)
	} else {
		srv.l.Infof(ctx, "Conversation usecase not configured, skipping conversation routes")
	}

	if srv.inferenceUC != nil {
		srv.setupInferenceDomain(ctx, api)
	} else {
		srv.l.Infof(ctx, "Inference proxy not configured, skipping inference route")
	}

	return nil
}
