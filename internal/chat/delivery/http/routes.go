package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/reset/:conversation_id", h.ResetConversation)
		chat.GET("/conversations", h.ListConversations)
		chat.DELETE("/:conversation_id", h.DeleteConversation)
	}
}
