package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"multi-agent-code-assistant/internal/agent"
)

// ReadFileTool reads a file under a fixed root directory. Paths escaping
// the root are rejected.
type ReadFileTool struct {
	root string
}

// NewReadFileTool creates the file reading tool rooted at root.
func NewReadFileTool(root string) *ReadFileTool {
	return &ReadFileTool{root: root}
}

var _ agent.Tool = (*ReadFileTool)(nil)

func (t *ReadFileTool) Name() string {
	return "read_file"
}

func (t *ReadFileTool) Description() string {
	return "Read the contents of a file"
}

func (t *ReadFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_path": map[string]interface{}{
				"type":        "string",
				"description": "Path to the file to read, relative to the workspace root",
			},
		},
		"required": []string{"file_path"},
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	path, _ := params["file_path"].(string)
	if path == "" {
		return nil, fmt.Errorf("read_file: file_path parameter is required")
	}

	resolved := filepath.Join(t.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(resolved, filepath.Clean(t.root)+string(os.PathSeparator)) {
		return map[string]interface{}{
			"success": false,
			"error":   fmt.Sprintf("path escapes workspace root: %s", path),
		}, nil
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}, nil
	}
	return map[string]interface{}{
		"success": true,
		"content": string(content),
	}, nil
}
