package orchestrator

import "time"

// TaskInput is one task turn as handed down from the transport layer.
// Model, Temperature and MaxIterations are accepted but not yet consumed by
// the pipeline; they are reserved for per-request overrides.
type TaskInput struct {
	Message        string
	ConversationID string
	UseRAG         bool
	Model          string
	Temperature    float64
	MaxIterations  int
}

// Source is one retrieved chunk as exposed to callers. Content is truncated,
// metadata and score are verbatim.
type Source struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
	Score    float64                `json:"score"`
}

// TraceEntry is one sanitized agent step, safe for external exposure.
type TraceEntry struct {
	Agent     string    `json:"agent"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	ToolsUsed []string  `json:"tools_used"`
	Timestamp time.Time `json:"timestamp"`
}

// Result is the outcome of one fully successful task turn. Failed turns
// return an error and no Result, partial traces included.
type Result struct {
	Response      string
	Trace         []TraceEntry
	Sources       []Source
	ExecutionTime time.Duration
}
