package http

// --- Request DTOs ---

type executeToolReq struct {
	ToolName  string                 `json:"tool_name" binding:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

type executeCodeReq struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
	Timeout  int    `json:"timeout"`
}

// --- Response DTOs ---

type toolSummary struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type listToolsResp struct {
	Tools []toolSummary `json:"tools"`
}

type executeCodeResp struct {
	Success       bool    `json:"success"`
	Output        string  `json:"output"`
	Error         string  `json:"error,omitempty"`
	ExecutionTime float64 `json:"execution_time"`
}
