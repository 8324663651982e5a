package http

import (
	"multi-agent-code-assistant/internal/agent/orchestrator"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string  `json:"message" binding:"required"`
	ConversationID string  `json:"conversation_id"`
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	UseRAG         *bool   `json:"use_rag"`
	MaxIterations  int     `json:"max_iterations"`
}

func (r chatReq) toInput(conversationID string) orchestrator.TaskInput {
	useRAG := true
	if r.UseRAG != nil {
		useRAG = *r.UseRAG
	}
	maxIterations := r.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 5
	}
	temperature := r.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	return orchestrator.TaskInput{
		Message:        r.Message,
		ConversationID: conversationID,
		UseRAG:         useRAG,
		Model:          r.Model,
		Temperature:    temperature,
		MaxIterations:  maxIterations,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response       string                   `json:"response"`
	ConversationID string                   `json:"conversation_id"`
	AgentTrace     []orchestrator.TraceEntry `json:"agent_trace"`
	Sources        []orchestrator.Source    `json:"sources,omitempty"`
	ExecutionTime  float64                  `json:"execution_time"`
}

func newChatResp(conversationID string, result *orchestrator.Result) chatResp {
	return chatResp{
		Response:       result.Response,
		ConversationID: conversationID,
		AgentTrace:     result.Trace,
		Sources:        result.Sources,
		ExecutionTime:  result.ExecutionTime.Seconds(),
	}
}

type conversationStatusResp struct {
	Status         string `json:"status"`
	ConversationID string `json:"conversation_id"`
}

type listConversationsResp struct {
	Conversations []string `json:"conversations"`
	Count         int      `json:"count"`
}
