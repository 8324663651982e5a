package tools

import (
	"context"
	"fmt"

	"multi-agent-code-assistant/internal/agent"
	"multi-agent-code-assistant/internal/vectorstore"
)

const defaultSearchLimit = 5

// SearchDocsTool searches the documentation index for chunks relevant to a
// query.
type SearchDocsTool struct {
	store vectorstore.Store
}

// NewSearchDocsTool creates the documentation search tool.
func NewSearchDocsTool(store vectorstore.Store) *SearchDocsTool {
	return &SearchDocsTool{store: store}
}

var _ agent.Tool = (*SearchDocsTool)(nil)

func (t *SearchDocsTool) Name() string {
	return "search_docs"
}

func (t *SearchDocsTool) Description() string {
	return "Search the indexed documentation for relevant information"
}

func (t *SearchDocsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query",
			},
			"max_results": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results to return",
				"default":     defaultSearchLimit,
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchDocsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, _ := params["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("search_docs: query parameter is required")
	}

	limit := defaultSearchLimit
	if n, ok := params["max_results"].(float64); ok && n > 0 {
		limit = int(n)
	}

	results, err := t.store.Search(ctx, query, limit, nil)
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}, nil
	}

	items := make([]map[string]interface{}, len(results))
	for i, r := range results {
		items[i] = map[string]interface{}{
			"content":  r.Content,
			"metadata": r.Metadata,
			"score":    r.Score,
		}
	}
	return map[string]interface{}{
		"success": true,
		"results": items,
	}, nil
}
