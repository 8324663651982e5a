package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentDelivery "multi-agent-code-assistant/internal/agent/delivery/http"
	chatDelivery "multi-agent-code-assistant/internal/chat/delivery/http"
	"multi-agent-code-assistant/internal/model"
	toolDelivery "multi-agent-code-assistant/internal/tool/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())

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

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatDelivery.RegisterRoutes(api, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")

	if srv.agentHandler != nil {
		agentDelivery.RegisterRoutes(api, srv.agentHandler)
		srv.l.Infof(ctx, "Agent catalog routes registered under /api/v1/agents")
	}

	if srv.toolHandler != nil {
		toolDelivery.RegisterRoutes(api, srv.toolHandler, srv.mw)
		srv.l.Infof(ctx, "Tool routes registered under /api/v1/tools")
	}

	return nil
}
