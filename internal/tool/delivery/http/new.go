package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/agent"
	"multi-agent-code-assistant/internal/sandbox"
	"multi-agent-code-assistant/pkg/log"
)

// Handler is the public interface for the tool HTTP delivery layer.
type Handler interface {
	ListTools(c *gin.Context)
	ExecuteTool(c *gin.Context)
	ExecuteCode(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *agent.ToolRegistry
	executor *sandbox.Executor
}

// New creates a new HTTP handler for tool execution.
func New(l log.Logger, registry *agent.ToolRegistry, executor *sandbox.Executor) Handler {
	return &handler{
		l:        l,
		registry: registry,
		executor: executor,
	}
}
