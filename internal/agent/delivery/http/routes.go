package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	agents := rg.Group("/agents")
	{
		agents.GET("", h.ListAgents)
		agents.GET("/:type", h.GetAgent)
	}
}
