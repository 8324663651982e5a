package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"multi-agent-code-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process a chat message
// @Description Runs the multi-agent pipeline on a user message and returns the composed response with an execution trace.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat request"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	h.l.Infof(ctx, "processing chat request for conversation %s", conversationID)

	orch := h.sessions.GetOrCreate(conversationID)
	result, err := orch.ExecuteTask(ctx, req.toInput(conversationID))
	if err != nil {
		h.l.Errorf(ctx, "chat request failed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(conversationID, result))
}

// ResetConversation godoc
// @Summary     Reset a conversation
// @Description Clears agent histories for a conversation without destroying it.
// @Tags        Chat
// @Produce     json
// @Param       conversation_id path string true "Conversation ID"
// @Success     200 {object} conversationStatusResp
// @Router      /api/v1/chat/reset/{conversation_id} [POST]
func (h *handler) ResetConversation(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	status := "reset"
	if err := h.sessions.Reset(conversationID); err != nil {
		status = "not_found"
	}
	response.OK(c, conversationStatusResp{
		Status:         status,
		ConversationID: conversationID,
	})
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Description Removes a conversation and its agent state.
// @Tags        Chat
// @Produce     json
// @Param       conversation_id path string true "Conversation ID"
// @Success     200 {object} conversationStatusResp
// @Router      /api/v1/chat/{conversation_id} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	status := "deleted"
	if !h.sessions.Delete(conversationID) {
		status = "not_found"
	}
	response.OK(c, conversationStatusResp{
		Status:         status,
		ConversationID: conversationID,
	})
}

// ListConversations godoc
// @Summary     List active conversations
// @Tags        Chat
// @Produce     json
// @Success     200 {object} listConversationsResp
// @Router      /api/v1/chat/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ids := h.sessions.List()
	response.OK(c, listConversationsResp{
		Conversations: ids,
		Count:         len(ids),
	})
}
