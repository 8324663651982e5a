package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	agentDelivery "multi-agent-code-assistant/internal/agent/delivery/http"
	chatDelivery "multi-agent-code-assistant/internal/chat/delivery/http"
	"multi-agent-code-assistant/internal/middleware"
	toolDelivery "multi-agent-code-assistant/internal/tool/delivery/http"
	"multi-agent-code-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domain handlers
	chatHandler  chatDelivery.Handler
	agentHandler agentDelivery.Handler
	toolHandler  toolDelivery.Handler

	// Readiness probes, keyed by component name.
	readiness map[string]func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatHandler  chatDelivery.Handler
	AgentHandler agentDelivery.Handler
	ToolHandler  toolDelivery.Handler

	Readiness map[string]func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		chatHandler:  cfg.ChatHandler,
		agentHandler: cfg.AgentHandler,
		toolHandler:  cfg.ToolHandler,
		readiness:    cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
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
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
