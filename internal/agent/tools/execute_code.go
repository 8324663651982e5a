package tools

import (
	"context"
	"fmt"
	"time"

	"multi-agent-code-assistant/internal/agent"
	"multi-agent-code-assistant/internal/sandbox"
)

// ExecuteCodeTool runs a code snippet in the restricted sandbox and returns
// the structured result. Failed executions are reported in the result, not
// as errors.
type ExecuteCodeTool struct {
	executor *sandbox.Executor
}

// NewExecuteCodeTool creates the code execution tool.
func NewExecuteCodeTool(executor *sandbox.Executor) *ExecuteCodeTool {
	return &ExecuteCodeTool{executor: executor}
}

var _ agent.Tool = (*ExecuteCodeTool)(nil)

func (t *ExecuteCodeTool) Name() string {
	return "execute_code"
}

func (t *ExecuteCodeTool) Description() string {
	return "Execute a code snippet safely in a restricted environment"
}

func (t *ExecuteCodeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"code": map[string]interface{}{
				"type":        "string",
				"description": "The code to execute",
			},
			"timeout_seconds": map[string]interface{}{
				"type":        "integer",
				"description": "Execution timeout in seconds",
			},
		},
		"required": []string{"code"},
	}
}

func (t *ExecuteCodeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	code, _ := params["code"].(string)
	if code == "" {
		return nil, fmt.Errorf("execute_code: code parameter is required")
	}

	var timeout time.Duration
	if secs, ok := params["timeout_seconds"].(float64); ok && secs > 0 {
		timeout = time.Duration(secs * float64(time.Second))
	}

	result := t.executor.Execute(ctx, code, timeout)

	out := map[string]interface{}{
		"success":        result.Success,
		"output":         result.Output,
		"execution_time": result.ExecutionTime.Seconds(),
	}
	if result.Error != "" {
		out["error"] = result.Error
	}
	return out, nil
}
