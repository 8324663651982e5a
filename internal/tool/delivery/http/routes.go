package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tools := rg.Group("/tools")
	{
		tools.GET("", h.ListTools)
		tools.POST("/execute", mw.RateLimit(), h.ExecuteTool)
		tools.POST("/code/execute", mw.RateLimit(), h.ExecuteCode)
	}
}
