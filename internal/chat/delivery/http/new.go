package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/session"
	"multi-agent-code-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ResetConversation(c *gin.Context)
	DeleteConversation(c *gin.Context)
	ListConversations(c *gin.Context)
}

type handler struct {
	l        log.Logger
	sessions *session.Store
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, sessions *session.Store) Handler {
	return &handler{
		l:        l,
		sessions: sessions,
	}
}
