package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/pkg/log"
)

// Handler is the public interface for the agent catalog HTTP delivery layer.
type Handler interface {
	ListAgents(c *gin.Context)
	GetAgent(c *gin.Context)
}

type handler struct {
	l log.Logger
}

// New creates a new HTTP handler for the agent catalog.
func New(l log.Logger) Handler {
	return &handler{l: l}
}
