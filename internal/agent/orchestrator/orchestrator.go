package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"multi-agent-code-assistant/internal/agent"
	"multi-agent-code-assistant/internal/rag"
	pkgLog "multi-agent-code-assistant/pkg/log"
)

// Orchestrator sequences specialized agents to solve one task turn.
//
// Each instance serves one conversation: it owns its agents (created lazily,
// one per role, reused across turns so their histories accumulate) and the
// per-turn execution trace. A turn is a single linear pass, plan first, then
// one or two specialists depending on classification; there is no
// re-planning loop. Turns on the same instance are serialized.
type Orchestrator struct {
	llm        agent.Generator
	ragBuilder *rag.Builder // nil disables retrieval
	l          pkgLog.Logger

	mu     sync.Mutex
	agents map[agent.Role]*agent.Agent
	trace  []agent.Step
}

// New creates an orchestrator. ragBuilder may be nil, in which case RAG
// requests are honored with an empty context.
func New(llm agent.Generator, ragBuilder *rag.Builder, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		llm:        llm,
		ragBuilder: ragBuilder,
		l:          l,
		agents:     make(map[agent.Role]*agent.Agent),
	}
}

// ExecuteTask runs one task turn end to end.
//
// Retrieval failures degrade to an empty context. Any agent failure aborts
// the turn; the caller gets the error and no partial trace.
func (o *Orchestrator) ExecuteTask(ctx context.Context, input TaskInput) (*Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if input.Message == "" {
		return nil, fmt.Errorf("task message is empty")
	}

	start := time.Now()
	o.trace = nil

	contextText, sources := o.retrieveContext(ctx, input)

	planner, err := o.getAgent(agent.RolePlanner)
	if err != nil {
		return nil, err
	}
	o.l.Infof(ctx, "orchestrator: planning task for conversation %s", input.ConversationID)
	planStep, err := planner.Execute(ctx, fmt.Sprintf(plannerTaskTemplate, input.Message), contextText)
	if err != nil {
		return nil, err
	}
	o.trace = append(o.trace, planStep)

	category := Classify(input.Message)
	o.l.Infof(ctx, "orchestrator: task classified as %s", category)

	var response string
	switch category {
	case CategoryCoding:
		response, err = o.runCoding(ctx, input.Message, contextText, planStep)
	case CategoryDebugging:
		response, err = o.runSpecialist(ctx, agent.RoleDebugger, input.Message, contextText, planStep, debuggingResponseTemplate)
	case CategoryOptimization:
		response, err = o.runSpecialist(ctx, agent.RoleOptimizer, input.Message, contextText, planStep, optimizationResponseTemplate)
	default:
		response, err = o.runGeneral(ctx, input.Message, contextText, planStep)
	}
	if err != nil {
		o.l.Errorf(ctx, "orchestrator: task execution failed: %v", err)
		return nil, err
	}

	elapsed := time.Since(start)
	o.l.Infof(ctx, "orchestrator: task completed in %.2fs using %d agents", elapsed.Seconds(), len(o.trace))

	return &Result{
		Response:      response,
		Trace:         sanitizeTrace(o.trace),
		Sources:       sources,
		ExecutionTime: elapsed,
	}, nil
}

// Reset clears every owned agent's history and the execution trace. The
// agents themselves are kept for reuse.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, a := range o.agents {
		a.ResetHistory()
	}
	o.trace = nil
}

// retrieveContext queries retrieval when requested and available. Absence of
// results, including from a failed query, leaves the context empty.
func (o *Orchestrator) retrieveContext(ctx context.Context, input TaskInput) (string, []Source) {
	sources := []Source{}
	if !input.UseRAG || o.ragBuilder == nil {
		return "", sources
	}

	o.l.Infof(ctx, "orchestrator: retrieving context for conversation %s", input.ConversationID)
	out := o.ragBuilder.Query(ctx, input.Message, TopK, nil)
	if len(out.Results) == 0 {
		return "", sources
	}

	for _, chunk := range out.Results {
		sources = append(sources, Source{
			Content:  truncate(chunk.Content, SourceContentLimit) + ellipsis,
			Metadata: chunk.Metadata,
			Score:    chunk.Score,
		})
	}
	return rag.FormatContext(out.Results), sources
}

func (o *Orchestrator) runCoding(ctx context.Context, message, contextText string, planStep agent.Step) (string, error) {
	coder, err := o.getAgent(agent.RoleCoder)
	if err != nil {
		return "", err
	}
	codeStep, err := coder.Execute(ctx, fmt.Sprintf(coderImplementTemplate, message, planStep.Output), contextText)
	if err != nil {
		return "", err
	}
	o.trace = append(o.trace, codeStep)

	reviewer, err := o.getAgent(agent.RoleReviewer)
	if err != nil {
		return "", err
	}
	reviewStep, err := reviewer.Execute(ctx, fmt.Sprintf(reviewerTaskTemplate, codeStep.Output), "")
	if err != nil {
		return "", err
	}
	o.trace = append(o.trace, reviewStep)

	return fmt.Sprintf(codingResponseTemplate, codeStep.Output, reviewStep.Output, planStep.Output), nil
}

func (o *Orchestrator) runSpecialist(ctx context.Context, role agent.Role, message, contextText string, planStep agent.Step, template string) (string, error) {
	specialist, err := o.getAgent(role)
	if err != nil {
		return "", err
	}
	step, err := specialist.Execute(ctx, message, contextText)
	if err != nil {
		return "", err
	}
	o.trace = append(o.trace, step)

	return fmt.Sprintf(template, step.Output, planStep.Output), nil
}

func (o *Orchestrator) runGeneral(ctx context.Context, message, contextText string, planStep agent.Step) (string, error) {
	coder, err := o.getAgent(agent.RoleCoder)
	if err != nil {
		return "", err
	}
	codeStep, err := coder.Execute(ctx, fmt.Sprintf(coderFollowPlanTemplate, message, planStep.Output), contextText)
	if err != nil {
		return "", err
	}
	o.trace = append(o.trace, codeStep)

	return fmt.Sprintf(generalResponseTemplate, codeStep.Output, planStep.Output), nil
}

// getAgent lazily creates the agent for role and reuses it on later turns.
func (o *Orchestrator) getAgent(role agent.Role) (*agent.Agent, error) {
	if a, ok := o.agents[role]; ok {
		return a, nil
	}
	a, err := agent.New(role, o.llm, o.l)
	if err != nil {
		return nil, err
	}
	o.agents[role] = a
	return a, nil
}

// sanitizeTrace redacts steps for external exposure: inputs and outputs are
// truncated with an ellipsis marker, internal fields are dropped.
func sanitizeTrace(steps []agent.Step) []TraceEntry {
	entries := make([]TraceEntry, len(steps))
	for i, step := range steps {
		input := step.Input
		if len([]rune(input)) > TraceInputLimit {
			input = truncate(input, TraceInputLimit) + ellipsis
		}
		output := step.Output
		if len([]rune(output)) > TraceOutputLimit {
			output = truncate(output, TraceOutputLimit) + ellipsis
		}
		entries[i] = TraceEntry{
			Agent:     string(step.Role),
			Input:     input,
			Output:    output,
			ToolsUsed: step.ToolsUsed,
			Timestamp: step.Timestamp,
		}
	}
	return entries
}

// truncate cuts s to at most limit runes. No marker is appended here.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
