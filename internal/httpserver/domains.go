package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	conversationHTTP "nutricoach/internal/conversation/delivery/http"
	inferenceHTTP "nutricoach/internal/inference/delivery/http"
	profileHTTP "nutricoach/internal/profile/delivery/http"
	settingsHTTP "nutricoach/internal/settings/delivery/http"
	tipHTTP "nutricoach/internal/tip/delivery/http"
)

// Each setup function follows the same steps:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)

func (srv HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup) {
	h := settingsHTTP.New(srv.l, srv.settingsUC)
	settingsHTTP.RegisterRoutes(api.Group("/settings"), h)
	srv.l.Infof(ctx, "Settings domain registered at %s/settings", apiPrefix)
}

func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup) {
	h := profileHTTP.New(srv.l, srv.profileUC)
	profileHTTP.RegisterRoutes(api.Group("/profile"), h)
	srv.l.Infof(ctx, "Profile domain registered at %s/profile", apiPrefix)
}

// setupTipDomain mounts /daily-tip at the root, where the front-end expects it.
func (srv HTTPServer) setupTipDomain(ctx context.Context, r gin.IRoutes) {
	h := tipHTTP.New(srv.l, srv.tipUC)
	tipHTTP.RegisterRoutes(r, h)
	srv.l.Infof(ctx, "Tip domain registered at GET /daily-tip")
}

func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup) {
	h := conversationHTTP.New(srv.l, srv.conversationUC, srv.hub)
	conversationHTTP.RegisterRoutes(api.Group("/conversation"), h)
	srv.l.Infof(ctx, "Conversation domain registered at %s/conversation", apiPrefix)
}

func (srv HTTPServer) setupInferenceDomain(ctx context.Context, api *gin.RouterGroup) {
	h := inferenceHTTP.New(srv.l, srv.inferenceUC)
	inferenceHTTP.RegisterRoutes(api.Group("/inference"), h)
	srv.l.Infof(ctx, "Inference proxy registered at POST %s/inference", apiPrefix)
}
