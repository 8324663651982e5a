package agent

import (
	"context"
	"fmt"
	"time"

	pkgLog "multi-agent-code-assistant/pkg/log"
	"multi-agent-code-assistant/pkg/llmprovider"
)

// Agent wraps a role-specific system prompt and a Generator behind a uniform
// execution contract. Each instance owns its own conversation history and is
// meant to be used from a single task turn at a time.
type Agent struct {
	role    Role
	profile Profile
	llm     Generator
	l       pkgLog.Logger

	// Alternating (user, assistant) pairs after the system prompt.
	// Length is always even between completed executions.
	history []llmprovider.Message
}

// New creates an agent for the given role. Construction is a pure profile
// lookup; unknown roles fail.
func New(role Role, llm Generator, l pkgLog.Logger) (*Agent, error) {
	profile, err := ProfileFor(role)
	if err != nil {
		return nil, err
	}
	return &Agent{
		role:    role,
		profile: profile,
		llm:     llm,
		l:       l,
	}, nil
}

// Role returns the agent's role.
func (a *Agent) Role() Role {
	return a.role
}

// Execute runs one task against the agent's role prompt and history,
// producing a Step. Context, when non-empty, is injected as a second system
// message rather than merged into the task text. Tool calls requested by the
// model are recorded by name only; executing them is the caller's concern.
//
// A generation failure propagates unmodified and leaves the history
// untouched; on success the (user, assistant) pair is appended even when the
// output is empty.
func (a *Agent) Execute(ctx context.Context, task, contextText string) (Step, error) {
	if task == "" {
		return Step{}, fmt.Errorf("agent %s: task is empty", a.role)
	}

	messages := make([]llmprovider.Message, 0, len(a.history)+2)
	if contextText != "" {
		messages = append(messages, llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: "Additional Context:\n" + contextText}},
		})
	}
	messages = append(messages, a.history...)
	messages = append(messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: task}},
	})

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: a.profile.SystemPrompt}},
		},
		Messages:    messages,
		Tools:       a.profile.Tools,
		Temperature: a.profile.Temperature,
	}

	resp, err := a.llm.GenerateContent(ctx, req)
	if err != nil {
		a.l.Errorf(ctx, "agent %s: execution failed: %v", a.role, err)
		return Step{}, err
	}

	output := resp.Text()

	var toolsUsed []string
	for _, call := range resp.ToolCalls() {
		toolsUsed = append(toolsUsed, call.Name)
	}

	a.history = append(a.history,
		llmprovider.Message{Role: "user", Parts: []llmprovider.Part{{Text: task}}},
		llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: output}}},
	)

	thinking, _ := ExtractThinking(output, ThinkingMarker)

	a.l.Infof(ctx, "agent %s completed task", a.role)

	return Step{
		Role:      a.role,
		Input:     task,
		Output:    output,
		ToolsUsed: toolsUsed,
		Thinking:  thinking,
		Timestamp: time.Now().UTC(),
	}, nil
}

// HistoryLength returns the number of messages in the conversation history.
func (a *Agent) HistoryLength() int {
	return len(a.history)
}

// ResetHistory clears the conversation history. Idempotent.
func (a *Agent) ResetHistory() {
	a.history = nil
}
